package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls   []string
	outputs map[string]string
	fail    map[string]error
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: map[string]string{}, fail: map[string]error{}}
}

func (e *fakeExecutor) Run(_ context.Context, name string, args ...string) error {
	line := cmdLine(name, args)
	e.calls = append(e.calls, line)
	return e.fail[line]
}

func (e *fakeExecutor) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := cmdLine(name, args)
	e.calls = append(e.calls, line)
	if err := e.fail[line]; err != nil {
		return nil, err
	}
	return []byte(e.outputs[line]), nil
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()

	return &Config{
		PlotCommand:      "go run ./cmd/sdfplot",
		LintPaths:        "cmd internal",
		RequirementsFile: filepath.Join(dir, "requirements.txt"),
		Samples: []Sample{
			{Name: "min", Input: "inputs/FRTONMIN", Output: filepath.Join(dir, "outputs", "frtonmin.pdf")},
			{Name: "fft", Input: "inputs/FFTNOISE", Output: filepath.Join(dir, "outputs", "fftnoise.png")},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func execute(t *testing.T, config *Config, executor Executor, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(config, executor, discardLogger())
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLint(t *testing.T) {
	executor := newFakeExecutor()

	_, err := execute(t, testConfig(t), executor, "lint")
	require.NoError(t, err)
	assert.Equal(t, []string{"gofmt -l cmd internal", "go vet ./..."}, executor.calls)
}

func TestLint_Unformatted(t *testing.T) {
	executor := newFakeExecutor()
	executor.outputs["gofmt -l cmd internal"] = "internal/spectrum/axis.go\ncmd/sdfplot/main.go\n"

	_, err := execute(t, testConfig(t), executor, "lint")
	require.ErrorIs(t, err, ErrUnformatted)
	assert.Contains(t, err.Error(), "internal/spectrum/axis.go, cmd/sdfplot/main.go")
	assert.Equal(t, []string{"gofmt -l cmd internal"}, executor.calls, "vet must not run")
}

func TestTest_RunsLintFirst(t *testing.T) {
	executor := newFakeExecutor()

	_, err := execute(t, testConfig(t), executor, "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"gofmt -l cmd internal", "go vet ./...", "go test ./..."}, executor.calls)
}

func TestTest_StopsOnLintFailure(t *testing.T) {
	executor := newFakeExecutor()
	executor.fail["go vet ./..."] = errors.New("exit status 1")

	_, err := execute(t, testConfig(t), executor, "test")
	require.Error(t, err)
	assert.NotContains(t, executor.calls, "go test ./...")
}

func TestFreeze(t *testing.T) {
	config := testConfig(t)
	executor := newFakeExecutor()
	executor.outputs["go list -m all"] = "github.com/roman-kulish/sdfplot\ngonum.org/v1/plot v0.14.0\n"

	_, err := execute(t, config, executor, "freeze")
	require.NoError(t, err)
	assert.Equal(t, []string{"go mod tidy", "go list -m all"}, executor.calls)

	data, err := os.ReadFile(config.RequirementsFile)
	require.NoError(t, err)
	assert.Equal(t, "github.com/roman-kulish/sdfplot\ngonum.org/v1/plot v0.14.0\n", string(data))
}

func TestFreeze_TidyFails(t *testing.T) {
	config := testConfig(t)
	executor := newFakeExecutor()
	executor.fail["go mod tidy"] = errors.New("exit status 1")

	_, err := execute(t, config, executor, "freeze")
	require.Error(t, err)
	assert.NoFileExists(t, config.RequirementsFile)
}

func TestSampleTask(t *testing.T) {
	config := testConfig(t)
	executor := newFakeExecutor()

	_, err := execute(t, config, executor, "min")
	require.NoError(t, err)

	out := config.Samples[0].Output
	assert.Equal(t, []string{"go run ./cmd/sdfplot inputs/FRTONMIN " + out}, executor.calls)
	assert.DirExists(t, filepath.Dir(out))
}

func TestAllSamples(t *testing.T) {
	config := testConfig(t)
	executor := newFakeExecutor()

	_, err := execute(t, config, executor, "all")
	require.NoError(t, err)
	require.Len(t, executor.calls, 2)
	assert.Contains(t, executor.calls[1], "inputs/FFTNOISE")
}

func TestAllSamples_StopsAtFailure(t *testing.T) {
	config := testConfig(t)
	executor := newFakeExecutor()
	executor.fail["go run ./cmd/sdfplot inputs/FRTONMIN "+config.Samples[0].Output] = errors.New("exit status 1")

	_, err := execute(t, config, executor, "all")
	assert.ErrorContains(t, err, "sample 'min'")
	assert.Len(t, executor.calls, 1)
}

func TestSamplesList(t *testing.T) {
	out, err := execute(t, testConfig(t), newFakeExecutor(), "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "min")
	assert.Contains(t, out, "inputs/FFTNOISE")
}

func TestTaskRejectsArguments(t *testing.T) {
	executor := newFakeExecutor()

	_, err := execute(t, testConfig(t), executor, "lint", "extra")
	assert.Error(t, err)
	assert.Empty(t, executor.calls)
}

func TestUnknownTask(t *testing.T) {
	_, err := execute(t, testConfig(t), newFakeExecutor(), "deploy")
	assert.ErrorContains(t, err, "unknown command")
}
