package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/server"
)

// NewCmdServe creates the serve command.
func NewCmdServe(opts *Options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analytics HTTP API",
		Long: `Starts an HTTP server exposing the computed reports as JSON:

  GET /api/repos/{owner}/{repo}/health
  GET /api/repos/{owner}/{repo}/quality
  GET /api/repos/{owner}/{repo}/prs
  GET /api/repos/{owner}/{repo}/dependencies
  GET /api/users/{user}/network

Every request recomputes from fresh GitHub API calls.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, analyzer, err := setup(opts)
			if err != nil {
				return err
			}

			log.Info("starting server", "addr", addr)
			return server.New(analyzer).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&opts.Token, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	return cmd
}
