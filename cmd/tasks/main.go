package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/roman-kulish/sdfplot/cmd/tasks/app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	config, err := app.LoadConfig(".")
	if err != nil {
		logger.Error("failed to load task configuration: " + err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	executor := app.NewShellExecutor(os.Stdout, os.Stderr, logger)
	if err = app.NewRootCommand(config, executor, logger).ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())

		cancel()
		os.Exit(1)
	}
}
