package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dlucca/gitgauge/config"
	"github.com/dlucca/gitgauge/internal/github"
	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/narrative"
	"github.com/dlucca/gitgauge/internal/output"
	"github.com/dlucca/gitgauge/internal/service"
)

// addAnalyzeFlags adds the analysis flags shared by the root command.
func addAnalyzeFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().BoolVar(&opts.Narrative, "narrative", false, "Generate an LLM prose summary (requires GEMINI_API_KEY)")

	cmd.Flags().BoolVar(&opts.Health, "health", false, "Only compute the health score")
	cmd.Flags().BoolVar(&opts.Quality, "quality", false, "Only compute code quality metrics")
	cmd.Flags().BoolVar(&opts.PRs, "prs", false, "Only compute pull request analytics")
	cmd.Flags().BoolVar(&opts.Deps, "deps", false, "Only compute the dependency graph")
}

// splitRepoArg parses an "owner/repo" argument.
func splitRepoArg(arg string) (owner, repo string, err error) {
	arg = strings.TrimPrefix(arg, "https://github.com/")
	arg = strings.TrimSuffix(arg, "/")
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", arg)
	}
	return parts[0], parts[1], nil
}

// setup loads config, initializes logging and builds the analyzer.
func setup(opts *Options) (*config.Config, *service.Analyzer, error) {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	token := opts.Token
	if token == "" {
		token = cfg.Token
	}
	client := github.NewClient(token)
	return cfg, service.New(client, cfg), nil
}

// resolveFormat picks the output format: flag, then config, then table.
func resolveFormat(opts *Options, cfg *config.Config) output.Format {
	if opts.Format != "" {
		return output.Format(opts.Format)
	}
	if cfg.DefaultFormat != "" {
		return output.Format(cfg.DefaultFormat)
	}
	return output.FormatTable
}

func runAnalyze(cmd *cobra.Command, arg string, opts *Options) error {
	ctx := cmd.Context()

	owner, repo, err := splitRepoArg(arg)
	if err != nil {
		return err
	}

	cfg, analyzer, err := setup(opts)
	if err != nil {
		return err
	}

	all := !opts.sectionsRequested()
	report := output.Report{Repo: owner + "/" + repo}

	if all || opts.Health {
		log.Progress("computing health score for %s/%s...", owner, repo)
		health, err := analyzer.RepoHealth(ctx, owner, repo)
		if err != nil {
			return err
		}
		log.ProgressDone()
		report.Health = &health
	}
	if all || opts.Quality {
		log.Progress("computing code quality for %s/%s...", owner, repo)
		quality, err := analyzer.CodeQuality(ctx, owner, repo)
		if err != nil {
			return err
		}
		log.ProgressDone()
		report.Quality = &quality
	}
	if all || opts.PRs {
		log.Progress("computing pull request analytics for %s/%s...", owner, repo)
		prs, err := analyzer.PRAnalytics(ctx, owner, repo)
		if err != nil {
			return err
		}
		log.ProgressDone()
		report.PRs = &prs
	}
	if all || opts.Deps {
		log.Progress("building dependency graph for %s/%s...", owner, repo)
		graph, health, err := analyzer.Dependencies(ctx, owner, repo)
		if err != nil {
			return err
		}
		log.ProgressDone()
		report.Deps = &graph
		report.DepHealth = &health
	}

	if narrativeEnabled(opts, cfg) {
		report.Narrative = generateNarrative(ctx, cfg, report)
	}

	formatter := output.NewFormatter(resolveFormat(opts, cfg))
	return formatter.Format(report, os.Stdout)
}

// narrativeEnabled reports whether a prose summary should be attempted.
func narrativeEnabled(opts *Options, cfg *config.Config) bool {
	if opts.Narrative {
		return true
	}
	return cfg.Narrative != nil && cfg.Narrative.Enabled
}

// generateNarrative produces the prose summary. Failures degrade to an
// empty narrative with a warning rather than failing the analysis.
func generateNarrative(ctx context.Context, cfg *config.Config, report output.Report) string {
	modelName := ""
	if cfg.Narrative != nil {
		modelName = cfg.Narrative.Model
	}

	gen, err := narrative.NewGenerator(ctx, modelName)
	if err != nil {
		log.Warn("narrative unavailable", "error", err)
		return ""
	}

	summary, err := gen.Summarize(ctx, narrative.Input{
		Repo:    report.Repo,
		Health:  report.Health,
		Quality: report.Quality,
		PRs:     report.PRs,
	})
	if err != nil {
		log.Warn("narrative generation failed", "error", err)
		return ""
	}
	return summary
}
