package app

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reservedTasks = map[string]struct{}{
	"lint":       {},
	"freeze":     {},
	"test":       {},
	"samples":    {},
	"all":        {},
	"help":       {},
	"completion": {},
}

// NewRootCommand builds the task tree: built-in tasks plus one task per sample
func NewRootCommand(config *Config, executor Executor, logger *slog.Logger) *cobra.Command {
	t := NewTasks(config, executor, logger)

	root := &cobra.Command{
		Use:           "tasks",
		Short:         "Project tasks: lint, freeze, test and sample plots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "lint",
			Short: "Check gofmt formatting and run go vet",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return t.Lint(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "freeze",
			Short: "Tidy go.mod and write the module list to " + config.RequirementsFile,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return t.Freeze(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "test",
			Short: "Lint and run the unit tests",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return t.Test(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "samples",
			Short: "List the sample plot tasks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, s := range config.Samples {
					fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Input, s.Output)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Plot every sample",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return t.PlotAll(cmd.Context())
			},
		},
	)

	for _, s := range config.Samples {
		s := s
		short := s.Description
		if short == "" {
			short = fmt.Sprintf("Plot %s into %s", s.Input, s.Output)
		}
		root.AddCommand(&cobra.Command{
			Use:   s.Name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return t.Plot(cmd.Context(), s)
			},
		})
	}

	return root
}
