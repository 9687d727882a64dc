package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Executor runs external commands on behalf of tasks
type Executor interface {
	// Run streams the command output to the executor's writers
	Run(ctx context.Context, name string, args ...string) error

	// Output returns the command stdout
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ShellExecutor runs commands with os/exec in the working directory
type ShellExecutor struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func NewShellExecutor(stdout, stderr io.Writer, logger *slog.Logger) *ShellExecutor {
	return &ShellExecutor{stdout: stdout, stderr: stderr, logger: logger}
}

func (e *ShellExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.command(ctx, name, args)
	cmd.Stdout = e.stdout

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running '%s': %w", cmdLine(name, args), err)
	}
	return nil
}

func (e *ShellExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer

	cmd := e.command(ctx, name, args)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running '%s': %w", cmdLine(name, args), err)
	}
	return stdout.Bytes(), nil
}

func (e *ShellExecutor) command(ctx context.Context, name string, args []string) *exec.Cmd {
	e.logger.Info("running command", slog.String("cmd", cmdLine(name, args)))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = e.stderr
	return cmd
}

func cmdLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
