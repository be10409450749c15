package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"superlists/internal/cli/commands"
	"superlists/internal/config"
)

func main() {
	// env + .env + флаги, как у сервера
	cfg := config.NewConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}
