package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "gitgauge <owner>/<repo>",
		Short: "GitHub repository analytics",
		Long: `Analyzes a GitHub repository and reports its health score, code
quality metrics, pull request analytics and dependency graph. Metrics are
heuristic approximations computed from fixed samples of recent activity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addAnalyzeFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdProfile(opts))
	rootCmd.AddCommand(NewCmdServe(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
