package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrUnformatted is returned by Lint when gofmt lists files
var ErrUnformatted = errors.New("files are not gofmt formatted")

// Tasks implements the built-in project tasks
type Tasks struct {
	config   *Config
	executor Executor
	logger   *slog.Logger
}

func NewTasks(config *Config, executor Executor, logger *slog.Logger) *Tasks {
	return &Tasks{config: config, executor: executor, logger: logger}
}

// Lint checks formatting with gofmt and runs go vet
func (t *Tasks) Lint(ctx context.Context) error {
	paths := strings.Fields(t.config.LintPaths)

	out, err := t.executor.Output(ctx, "gofmt", append([]string{"-l"}, paths...)...)
	if err != nil {
		return err
	}
	if files := strings.Fields(string(out)); len(files) > 0 {
		return fmt.Errorf("%w: %s", ErrUnformatted, strings.Join(files, ", "))
	}

	return t.executor.Run(ctx, "go", "vet", "./...")
}

// Freeze tidies go.mod and writes the resolved module list
func (t *Tasks) Freeze(ctx context.Context) error {
	if err := t.executor.Run(ctx, "go", "mod", "tidy"); err != nil {
		return err
	}

	out, err := t.executor.Output(ctx, "go", "list", "-m", "all")
	if err != nil {
		return err
	}
	if err = os.WriteFile(t.config.RequirementsFile, out, 0o644); err != nil {
		return fmt.Errorf("writing '%s': %w", t.config.RequirementsFile, err)
	}

	t.logger.Info("dependencies frozen",
		slog.String("destination", t.config.RequirementsFile),
		slog.Int("modules", bytes.Count(out, []byte("\n"))),
		slog.String("size", humanize.Bytes(uint64(len(out)))))
	return nil
}

// Test lints, then runs the unit tests
func (t *Tasks) Test(ctx context.Context) error {
	if err := t.Lint(ctx); err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	return t.executor.Run(ctx, "go", "test", "./...")
}

// Plot renders one bundled sample with the plot command
func (t *Tasks) Plot(ctx context.Context, s Sample) error {
	if err := os.MkdirAll(filepath.Dir(s.Output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	cmd := strings.Fields(t.config.PlotCommand)
	args := append(cmd[1:len(cmd):len(cmd)], s.Input, s.Output)

	t.logger.Info("plotting sample",
		slog.String("sample", s.Name),
		slog.String("input", s.Input),
		slog.String("output", s.Output))

	return t.executor.Run(ctx, cmd[0], args...)
}

// PlotAll renders every configured sample, stopping at the first failure
func (t *Tasks) PlotAll(ctx context.Context) error {
	for _, s := range t.config.Samples {
		if err := t.Plot(ctx, s); err != nil {
			return fmt.Errorf("sample '%s': %w", s.Name, err)
		}
	}
	return nil
}
