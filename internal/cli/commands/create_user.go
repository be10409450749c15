package commands

import (
	"context"
	"fmt"

	"superlists/internal/config"
	"superlists/internal/service"
)

type createUserCmd struct{}

func (createUserCmd) Name() string        { return "create-user" }
func (createUserCmd) Description() string { return "Register a user by email" }
func (createUserCmd) Usage() string       { return "create-user <email>" }

func (createUserCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withAuthService(ctx, cfg, func(svc *service.AuthService) error {
		u, err := svc.CreateUser(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Created user %s\n", u.Email)
		return nil
	})
}

func init() { RegisterCmd(createUserCmd{}) }
