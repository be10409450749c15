package commands

import (
	"context"
	"fmt"

	"superlists/internal/config"
	"superlists/internal/repo"

	"gorm.io/gorm"
)

type migrateCmd struct{}

func (migrateCmd) Name() string        { return "migrate" }
func (migrateCmd) Description() string { return "Create or update the database schema" }
func (migrateCmd) Usage() string       { return "migrate" }

func (migrateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withDB(ctx, cfg, func(db *gorm.DB) error {
		// InitDB уже мигрировал схему, повторный вызов ничего не меняет
		if err := repo.Migrate(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Schema is up to date")
		return nil
	})
}

func init() { RegisterCmd(migrateCmd{}) }
