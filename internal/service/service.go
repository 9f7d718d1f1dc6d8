// Package service orchestrates the GitHub fetch layer and the metric
// engines into the five analytics reports. Auxiliary fetches degrade to
// empty inputs on failure; only the primary repository lookup is fatal.
package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dlucca/gitgauge/config"
	"github.com/dlucca/gitgauge/internal/collab"
	"github.com/dlucca/gitgauge/internal/deps"
	"github.com/dlucca/gitgauge/internal/github"
	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/metrics"
	"github.com/dlucca/gitgauge/internal/model"
)

// Fetcher is the slice of the GitHub client the analyzer consumes.
// Narrowed to an interface so server and command tests can stub it.
type Fetcher interface {
	GetRepo(ctx context.Context, owner, repo string) (model.Repo, error)
	ListUserRepos(ctx context.Context, user string, limit int) ([]model.Repo, error)
	ReadmeLength(ctx context.Context, owner, repo string) int
	HasFile(ctx context.Context, owner, repo, path string) bool
	RecentCommitCount(ctx context.Context, owner, repo string, since time.Time) int
	ListIssues(ctx context.Context, owner, repo string, limit int) ([]model.Issue, error)
	ListContributors(ctx context.Context, owner, repo string, limit int) ([]model.Contributor, error)
	ListPullRequests(ctx context.Context, owner, repo string, limit int) ([]model.PullRequest, error)
	FetchPullDetails(ctx context.Context, owner, repo string, prs []model.PullRequest, sample int) []model.PullRequest
	ListCommitsWithStats(ctx context.Context, owner, repo string, limit int) ([]model.Commit, error)
	FetchManifest(ctx context.Context, owner, repo string) *model.Manifest
}

var _ Fetcher = (*github.Client)(nil)

// Analyzer computes analytics reports for repositories and users.
type Analyzer struct {
	fetcher Fetcher
	limits  config.Limits
	weights config.HealthWeights
	window  time.Duration
}

// New creates an Analyzer using the limits and score weights from cfg.
func New(fetcher Fetcher, cfg *config.Config) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		limits:  cfg.GetLimits(),
		weights: cfg.GetHealthWeights(),
		window:  cfg.GetRecentWindow(),
	}
}

// RepoHealth fetches the documentation, activity and issue signals for a
// repository and scores them.
func (a *Analyzer) RepoHealth(ctx context.Context, owner, repo string) (model.RepoHealthScore, error) {
	repoData, err := a.fetcher.GetRepo(ctx, owner, repo)
	if err != nil {
		return model.RepoHealthScore{}, err
	}

	in := metrics.HealthInput{
		Repo:       repoData,
		HasLicense: repoData.HasLicense,
	}
	var issues []model.Issue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		in.ReadmeLength = a.fetcher.ReadmeLength(gctx, owner, repo)
		return nil
	})
	g.Go(func() error {
		in.HasContributing = a.fetcher.HasFile(gctx, owner, repo, "CONTRIBUTING.md")
		return nil
	})
	g.Go(func() error {
		in.HasChangelog = a.fetcher.HasFile(gctx, owner, repo, "CHANGELOG.md")
		return nil
	})
	g.Go(func() error {
		in.HasCodeOfConduct = a.fetcher.HasFile(gctx, owner, repo, "CODE_OF_CONDUCT.md")
		return nil
	})
	g.Go(func() error {
		in.HasCI = a.fetcher.HasFile(gctx, owner, repo, ".github/workflows")
		return nil
	})
	g.Go(func() error {
		since := time.Now().Add(-a.window)
		in.RecentCommits = a.fetcher.RecentCommitCount(gctx, owner, repo, since)
		in.CommitFrequency = in.RecentCommits
		return nil
	})
	g.Go(func() error {
		var err error
		issues, err = a.fetcher.ListIssues(gctx, owner, repo, a.limits.IssueSample)
		if err != nil {
			log.Debug("issue fetch failed", "repo", owner+"/"+repo, "error", err)
		}
		return nil
	})
	_ = g.Wait()

	in.IssueResponseTime, in.IssueResolutionRate = issueSignals(issues)

	return metrics.ScoreHealth(in, a.weights), nil
}

// issueSignals derives the mean hours-to-close and the resolution rate from
// an issue sample. Both are nil when the sample holds no closed issues, so
// the scorer can tell "no data" from "instant response".
func issueSignals(issues []model.Issue) (responseTime, resolutionRate *float64) {
	if len(issues) == 0 {
		return nil, nil
	}

	var closed int
	var totalHours float64
	for _, is := range issues {
		if is.ClosedAt == nil {
			continue
		}
		closed++
		totalHours += is.ClosedAt.Sub(is.CreatedAt).Hours()
	}

	if closed > 0 {
		mean := totalHours / float64(closed)
		responseTime = &mean
	}
	rate := float64(closed) / float64(len(issues)) * 100
	resolutionRate = &rate
	return responseTime, resolutionRate
}

// CodeQuality computes review turnaround, churn and dependency health for a
// repository.
func (a *Analyzer) CodeQuality(ctx context.Context, owner, repo string) (model.CodeQualityMetrics, error) {
	if _, err := a.fetcher.GetRepo(ctx, owner, repo); err != nil {
		return model.CodeQualityMetrics{}, err
	}

	var detailed []model.PullRequest
	var commits []model.Commit
	var manifest *model.Manifest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prs, err := a.fetcher.ListPullRequests(gctx, owner, repo, 100)
		if err != nil {
			log.Debug("pull request fetch failed", "repo", owner+"/"+repo, "error", err)
			return nil
		}
		detailed = a.fetcher.FetchPullDetails(gctx, owner, repo, prs, a.limits.PRSample)
		return nil
	})
	g.Go(func() error {
		var err error
		commits, err = a.fetcher.ListCommitsWithStats(gctx, owner, repo, a.limits.CommitSample)
		if err != nil {
			log.Debug("commit fetch failed", "repo", owner+"/"+repo, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		manifest = a.fetcher.FetchManifest(gctx, owner, repo)
		return nil
	})
	_ = g.Wait()

	average, median := metrics.ReviewTimes(detailed, float64(a.limits.MaxReviewHours))
	churn, avgChurn := metrics.Churn(commits)
	health := deps.AnalyzeHealth(manifest)

	result := model.CodeQualityMetrics{
		AveragePRReviewTime:   round1(average),
		MedianPRReviewTime:    round1(median),
		CodeChurn:             churn,
		AverageChurnPerCommit: avgChurn,
		DependencyHealth:      health,
		LastCalculated:        time.Now().UTC(),
	}

	// Recommendations key off the unrounded average.
	result.Recommendations = metrics.QualityRecommendations(model.CodeQualityMetrics{
		AveragePRReviewTime:   average,
		AverageChurnPerCommit: avgChurn,
		DependencyHealth:      health,
	})
	return result, nil
}

// PRAnalytics computes the pull request analytics report.
func (a *Analyzer) PRAnalytics(ctx context.Context, owner, repo string) (model.PRAnalytics, error) {
	prs, err := a.fetcher.ListPullRequests(ctx, owner, repo, 100)
	if err != nil {
		return model.PRAnalytics{}, err
	}
	if len(prs) == 0 {
		return metrics.AnalyzePRs(nil, nil, float64(a.limits.MaxReviewHours)), nil
	}

	detailed := a.fetcher.FetchPullDetails(ctx, owner, repo, prs, a.limits.PRSample)
	return metrics.AnalyzePRs(prs, detailed, float64(a.limits.MaxReviewHours)), nil
}

// Dependencies fetches the repository manifest and builds the graph and
// health reports. A repo without a manifest yields empty reports.
func (a *Analyzer) Dependencies(ctx context.Context, owner, repo string) (model.DependencyGraph, model.DependencyHealth, error) {
	if _, err := a.fetcher.GetRepo(ctx, owner, repo); err != nil {
		return model.DependencyGraph{}, model.DependencyHealth{}, err
	}

	manifest := a.fetcher.FetchManifest(ctx, owner, repo)
	health := deps.AnalyzeHealth(manifest)

	if manifest == nil {
		empty := model.DependencyGraph{
			Nodes:      []model.DependencyNode{},
			Edges:      []model.DependencyEdge{},
			Ecosystems: []model.Ecosystem{},
		}
		return empty, health, nil
	}

	nodes, edges := deps.BuildGraph(manifest, repo)
	nodes, edges = deps.CapGraph(nodes, edges, a.limits.GraphMaxNodes)

	graph := model.DependencyGraph{
		Nodes:                nodes,
		Edges:                edges,
		TotalDependencies:    len(manifest.Dependencies),
		TotalDevDependencies: len(manifest.DevDependencies),
		Ecosystems:           []model.Ecosystem{manifest.Ecosystem},
	}
	return graph, health, nil
}

// CollaborationNetwork builds the author/reviewer graph across a user's
// most recently active repositories. Repositories that fail to yield data
// are skipped.
func (a *Analyzer) CollaborationNetwork(ctx context.Context, user string) (model.CollaborationNetwork, error) {
	repos, err := a.fetcher.ListUserRepos(ctx, user, a.limits.RepoSample)
	if err != nil {
		return model.CollaborationNetwork{}, err
	}
	if len(repos) == 0 {
		return collab.BuildNetwork(nil, nil, nil, a.limits.NetworkMaxNodes, a.limits.NetworkMaxEdges), nil
	}

	var allContributors []model.Contributor
	var allPRs []model.PullRequest
	repoNames := make([]string, 0, len(repos))

	for _, r := range repos {
		repoNames = append(repoNames, r.FullName)
		owner, name := splitFullName(r.FullName, user)

		contributors, err := a.fetcher.ListContributors(ctx, owner, name, a.limits.ContributorSample)
		if err != nil {
			log.Debug("contributor fetch failed", "repo", r.FullName, "error", err)
		}
		allContributors = append(allContributors, contributors...)

		prs, err := a.fetcher.ListPullRequests(ctx, owner, name, 30)
		if err != nil {
			log.Debug("pull request fetch failed", "repo", r.FullName, "error", err)
			continue
		}
		detailed := a.fetcher.FetchPullDetails(ctx, owner, name, prs, a.limits.NetworkPRSample)
		allPRs = append(allPRs, detailed...)
	}

	return collab.BuildNetwork(allContributors, allPRs, repoNames, a.limits.NetworkMaxNodes, a.limits.NetworkMaxEdges), nil
}

// splitFullName splits "owner/name", falling back to the requesting user
// as owner when the full name is malformed.
func splitFullName(fullName, fallbackOwner string) (owner, name string) {
	for i := 0; i < len(fullName); i++ {
		if fullName[i] == '/' {
			return fullName[:i], fullName[i+1:]
		}
	}
	return fallbackOwner, fullName
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
