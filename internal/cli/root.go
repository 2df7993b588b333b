// Package cli provides the command-line interface for intraeng.
package cli

import (
	"fmt"

	"intraeng/internal/app"
	"intraeng/internal/config"

	"github.com/spf13/cobra"
)

// options is filled by the root PersistentPreRunE before any subcommand runs.
type options struct {
	cfg *config.Config
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "intraeng",
		Short: "Student enrollment records and class ranking",
		Long: `intraeng validates student enrollment records and keeps a points
ranking per class for the current session.

Nothing is persisted: records and scores live until the program exits.`,
		Version: app.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newMenuCommand(opts))
	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newMenuCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Long: `Start an interactive session to enroll students and score classes.

Type help inside the menu for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app.New(opts.cfg)
			return a.Menu(cmd.Context(), nil, cmd.OutOrStdout())
		},
	}
}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a sample enrollment and ranking session",
		Long: `Enroll one valid and one under-age student, add points to two
classes and print the ranking and the winning class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app.New(opts.cfg)
			return a.Demo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display intraeng version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.ServiceName, app.Version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s, built %s\n", app.GitCommit, app.BuildTime)
		},
	}
}
