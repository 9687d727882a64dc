package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/roman-kulish/sdfplot/cmd/sdfplot/app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := run(os.Args[1:], logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// run parses the command line and plots one measurement. A help request
// prints usage and succeeds.
func run(args []string, logger *slog.Logger) error {
	config, err := app.NewConfigFromCLI(args, os.Stderr)
	if errors.Is(err, app.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, config, logger)
}
