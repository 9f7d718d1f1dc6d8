package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dlucca/gitgauge/internal/format"
	"github.com/dlucca/gitgauge/internal/model"
)

// MarkdownFormatter formats output as GitHub-flavored Markdown, suitable
// for pasting into issues or docs.
type MarkdownFormatter struct{}

// Format renders the report sections that are present.
func (f *MarkdownFormatter) Format(report Report, w io.Writer) error {
	var b strings.Builder

	switch {
	case report.Repo != "":
		fmt.Fprintf(&b, "# Analytics for %s\n\n", report.Repo)
	case report.User != "":
		fmt.Fprintf(&b, "# Collaboration network for %s\n\n", report.User)
	}

	if report.Narrative != "" {
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(report.Narrative))
	}
	if report.Health != nil {
		writeHealthMarkdown(&b, report.Health)
	}
	if report.Quality != nil {
		writeQualityMarkdown(&b, report.Quality)
	}
	if report.PRs != nil {
		writePRsMarkdown(&b, report.PRs)
	}
	if report.Deps != nil {
		writeDepsMarkdown(&b, report.Deps, report.DepHealth)
	}
	if report.Network != nil {
		writeNetworkMarkdown(&b, report.Network)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHealthMarkdown(b *strings.Builder, health *model.RepoHealthScore) {
	fmt.Fprintf(b, "## Health score: %s\n\n", format.FormatScore(health.Overall))
	fmt.Fprintf(b, "| Category | Score |\n|---|---|\n")
	fmt.Fprintf(b, "| Documentation | %d |\n", health.Breakdown.Documentation)
	fmt.Fprintf(b, "| Maintenance | %d |\n", health.Breakdown.Maintenance)
	fmt.Fprintf(b, "| Community | %d |\n", health.Breakdown.Community)
	fmt.Fprintf(b, "| Issue response | %d |\n", health.Breakdown.IssueResponse)
	fmt.Fprintf(b, "| Code quality | %d |\n\n", health.Breakdown.CodeQuality)
	writeRecommendations(b, health.Recommendations)
}

func writeQualityMarkdown(b *strings.Builder, q *model.CodeQualityMetrics) {
	fmt.Fprintf(b, "## Code quality\n\n")
	fmt.Fprintf(b, "- Average PR review time: %.1fh\n", q.AveragePRReviewTime)
	fmt.Fprintf(b, "- Median PR review time: %.1fh\n", q.MedianPRReviewTime)
	fmt.Fprintf(b, "- Average churn per commit: %d lines\n", q.AverageChurnPerCommit)
	fmt.Fprintf(b, "- Dependencies: %d total, %d outdated\n\n", q.DependencyHealth.Total, q.DependencyHealth.Outdated)
	writeRecommendations(b, q.Recommendations)
}

func writePRsMarkdown(b *strings.Builder, prs *model.PRAnalytics) {
	fmt.Fprintf(b, "## Pull requests\n\n")
	fmt.Fprintf(b, "- Total: %d (merged %d, closed %d, open %d)\n", prs.TotalPRs, prs.MergedPRs, prs.ClosedPRs, prs.OpenPRs)
	fmt.Fprintf(b, "- Merge success rate: %.1f%%\n", prs.SuccessRate)
	fmt.Fprintf(b, "- Average review turnaround: %.1fh\n", prs.AverageReviewTurnaroundTime)
	fmt.Fprintf(b, "- Sizes: %d small / %d medium / %d large\n\n",
		prs.PRSizeAnalysis.Small, prs.PRSizeAnalysis.Medium, prs.PRSizeAnalysis.Large)

	if len(prs.MergeTimeDistribution) > 0 {
		fmt.Fprintf(b, "| Time to merge | PRs |\n|---|---|\n")
		for _, bucket := range prs.MergeTimeDistribution {
			fmt.Fprintf(b, "| %s | %d |\n", bucket.Range, bucket.Count)
		}
		fmt.Fprintln(b)
	}
	if len(prs.ActiveReviewers) > 0 {
		fmt.Fprintf(b, "Top reviewers:\n\n")
		for _, r := range prs.ActiveReviewers {
			fmt.Fprintf(b, "- %s (%d reviews)\n", r.Login, r.Reviews)
		}
		fmt.Fprintln(b)
	}
}

func writeDepsMarkdown(b *strings.Builder, graph *model.DependencyGraph, health *model.DependencyHealth) {
	fmt.Fprintf(b, "## Dependencies\n\n")
	fmt.Fprintf(b, "- Direct: %d, dev: %d\n", graph.TotalDependencies, graph.TotalDevDependencies)
	if len(graph.Ecosystems) > 0 {
		names := make([]string, 0, len(graph.Ecosystems))
		for _, e := range graph.Ecosystems {
			names = append(names, string(e))
		}
		fmt.Fprintf(b, "- Ecosystems: %s\n", strings.Join(names, ", "))
	}
	if health != nil {
		fmt.Fprintf(b, "- Pinned: %d, outdated: %d\n", health.Latest, health.Outdated)
	}
	fmt.Fprintln(b)
}

func writeNetworkMarkdown(b *strings.Builder, net *model.CollaborationNetwork) {
	fmt.Fprintf(b, "## Collaboration network\n\n")
	fmt.Fprintf(b, "- Collaborators: %d across %d repositories\n", net.TotalCollaborators, net.TotalRepos)
	if net.MostActiveCollaborator != nil {
		fmt.Fprintf(b, "- Most active: %s (%d contributions)\n",
			net.MostActiveCollaborator.Login, net.MostActiveCollaborator.Contributions)
	}
	if len(net.Edges) > 0 {
		fmt.Fprintf(b, "\n| Pair | Reviews |\n|---|---|\n")
		for _, e := range net.Edges {
			fmt.Fprintf(b, "| %s ↔ %s | %d |\n", e.Source, e.Target, e.Weight)
		}
	}
	fmt.Fprintln(b)
}

func writeRecommendations(b *strings.Builder, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "Recommendations:\n\n")
	for _, r := range recs {
		fmt.Fprintf(b, "- %s\n", r)
	}
	fmt.Fprintln(b)
}
