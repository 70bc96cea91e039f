package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Marcelofury/SmartQueue/cmd/command"
	"github.com/Marcelofury/SmartQueue/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	const description = "SmartQueue Server"
	root := &cobra.Command{Short: description}

	cfg, err := config.Load()
	if err != nil {
		log.WithContext(ctx).Fatal(err)
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)

	root.AddCommand(
		command.Server{Logger: logger}.Command(ctx, cfg),
		command.MigrateCommand{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
