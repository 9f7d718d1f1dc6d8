package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/output"
)

// NewCmdProfile creates the profile command.
func NewCmdProfile(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <user>",
		Short: "Build a user's collaboration network",
		Long: `Scans a user's most recently updated repositories and builds a
weighted network of who reviews whose pull requests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	return cmd
}

func runProfile(cmd *cobra.Command, user string, opts *Options) error {
	ctx := cmd.Context()

	cfg, analyzer, err := setup(opts)
	if err != nil {
		return err
	}

	log.Progress("building collaboration network for %s...", user)
	network, err := analyzer.CollaborationNetwork(ctx, user)
	if err != nil {
		return err
	}
	log.ProgressDone()

	report := output.Report{User: user, Network: &network}
	formatter := output.NewFormatter(resolveFormat(opts, cfg))
	return formatter.Format(report, os.Stdout)
}
