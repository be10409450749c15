package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"superlists/internal/config"
	"superlists/internal/handlers"
	"superlists/internal/mail"
	"superlists/internal/middleware"
	"superlists/internal/otel"
	"superlists/internal/repo"
	"superlists/internal/service"

	"go.uber.org/zap"
)

const serviceName = "superlists"

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	newLogger := zap.NewDevelopment
	if cfg.LogJSON {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		sugar.Fatalw("failed to initialize tracing", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if err := repo.Close(gormDB); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	var sender mail.Sender
	if cfg.EmailHost != "" {
		sender = mail.NewSMTPSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword)
	} else {
		sender = mail.NewLogSender(sugar)
	}

	userRepo := repo.NewUserRepository(gormDB)
	tokenRepo := repo.NewTokenRepository(gormDB)
	listRepo := repo.NewListRepository(gormDB)

	authService := service.NewAuthService(userRepo, tokenRepo, sender, cfg.EmailFrom, sugar)
	listService := service.NewListService(listRepo, userRepo, sugar)

	h := handlers.NewHandler(authService, listService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           otel.Wrap(h.Router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server", "addr", srv.Addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"PublicURL", cfg.PublicURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"SMTP", cfg.EmailHost != "",
		"Tracing", cfg.OTLPEndpoint != "",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		sugar.Errorw("Tracer shutdown failed", "error", err)
	}
}
