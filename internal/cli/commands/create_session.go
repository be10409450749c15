package commands

import (
	"context"
	"fmt"

	"superlists/internal/config"
	"superlists/internal/middleware"
	"superlists/internal/service"
)

// createSessionCmd печатает значение cookie auth_token для заранее
// аутентифицированной сессии; пользователь создаётся при необходимости.
type createSessionCmd struct{}

func (createSessionCmd) Name() string        { return "create-session" }
func (createSessionCmd) Description() string { return "Print a pre-authenticated session cookie value" }
func (createSessionCmd) Usage() string       { return "create-session <email>" }

func (createSessionCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withAuthService(ctx, cfg, func(svc *service.AuthService) error {
		u, err := svc.EnsureUser(ctx, args[0])
		if err != nil {
			return err
		}
		token, err := middleware.NewSessionToken(u.Email, cfg.AuthSecret, cfg.SessionTTL)
		if err != nil {
			return fmt.Errorf("sign session: %w", err)
		}
		fmt.Fprintln(Out, token)
		return nil
	})
}

func init() { RegisterCmd(createSessionCmd{}) }
