package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "tasks"
	envPrefix  = "TASKS"
)

// Sample is a bundled measurement with a shortcut task
type Sample struct {
	Name        string `mapstructure:"name"`
	Input       string `mapstructure:"input"`  // path without extension
	Output      string `mapstructure:"output"` // plot file
	Description string `mapstructure:"description"`
}

// Config represents the task runner configuration
type Config struct {
	PlotCommand      string   `mapstructure:"plot_command"`
	LintPaths        string   `mapstructure:"lint_paths"`
	RequirementsFile string   `mapstructure:"requirements_file"`
	Samples          []Sample `mapstructure:"samples"`
}

func defaultSamples() []Sample {
	return []Sample{
		{Name: "min", Input: "inputs/FRTONMIN", Output: "outputs/frtonmin.pdf", Description: "Plot the frequency response with the tone control at minimum"},
		{Name: "mid", Input: "inputs/FRTONMID", Output: "outputs/frtonmid.pdf", Description: "Plot the frequency response with the tone control at mid position"},
		{Name: "max", Input: "inputs/FRTONMAX", Output: "outputs/frtonmax.pdf", Description: "Plot the frequency response with the tone control at maximum"},
		{Name: "fft", Input: "inputs/FFTNOISE", Output: "outputs/fftnoise.pdf", Description: "Plot the output noise spectrum"},
	}
}

// LoadConfig reads tasks.yaml from dir if present. TASKS_* environment
// variables override file values, built-in defaults fill the rest.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("plot_command", "go run ./cmd/sdfplot")
	v.SetDefault("lint_paths", "cmd internal")
	v.SetDefault("requirements_file", "requirements.txt")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading task configuration: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding task configuration: %w", err)
	}
	if len(c.Samples) == 0 {
		c.Samples = defaultSamples()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every sample task can be registered and run
func (c *Config) Validate() error {
	if len(strings.Fields(c.PlotCommand)) == 0 {
		return errors.New("plot_command is required")
	}

	seen := make(map[string]struct{}, len(c.Samples))
	for i, s := range c.Samples {
		switch {
		case s.Name == "":
			return fmt.Errorf("sample %d: name is required", i)
		case s.Input == "" || s.Output == "":
			return fmt.Errorf("sample '%s': input and output are required", s.Name)
		}
		if _, ok := reservedTasks[s.Name]; ok {
			return fmt.Errorf("sample '%s': name is reserved by a built-in task", s.Name)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("sample '%s': duplicate name", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
