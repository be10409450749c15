package commands

import (
	"context"
	"fmt"

	"superlists/internal/config"
	"superlists/internal/mail"
	"superlists/internal/repo"
	"superlists/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// withAuthService открывает БД из конфигурации и отдаёт AuthService в fn.
// Почта админ-командам не нужна, поэтому письма только логируются.
func withAuthService(ctx context.Context, cfg *config.Config, fn func(*service.AuthService) error) error {
	return withDB(ctx, cfg, func(db *gorm.DB) error {
		logger := zap.NewNop().Sugar()
		svc := service.NewAuthService(
			repo.NewUserRepository(db),
			repo.NewTokenRepository(db),
			mail.NewLogSender(logger),
			cfg.EmailFrom,
			logger,
		)
		return fn(svc)
	})
}

func withDB(_ context.Context, cfg *config.Config, fn func(*gorm.DB) error) error {
	db, err := repo.InitDB(cfg.DatabaseDSN, nil)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = repo.Close(db) }()
	return fn(db)
}
