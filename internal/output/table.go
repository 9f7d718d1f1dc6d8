package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dlucca/gitgauge/internal/format"
	"github.com/dlucca/gitgauge/internal/model"
)

// TableFormatter formats output as terminal tables
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// padRight pads a string with spaces to reach the target visible width
func padRight(s string, visibleWidth, targetWidth int) string {
	if visibleWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-visibleWidth)
}

// Format outputs the report sections as terminal tables
func (f *TableFormatter) Format(report Report, w io.Writer) error {
	switch {
	case report.Repo != "":
		title := hyperlink(report.Repo, "https://github.com/"+report.Repo)
		fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprint(title))
	case report.User != "":
		title := hyperlink(report.User, "https://github.com/"+report.User)
		fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprint(title))
	}

	if report.Narrative != "" {
		fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(report.Narrative))
	}
	if report.Health != nil {
		printHealth(w, report.Health)
	}
	if report.Quality != nil {
		printQuality(w, report.Quality)
	}
	if report.PRs != nil {
		printPRs(w, report.PRs)
	}
	if report.Deps != nil {
		printDeps(w, report.Deps, report.DepHealth)
	}
	if report.Network != nil {
		printNetwork(w, report.Network)
	}

	return nil
}

// subscoreCaps mirrors the breakdown caps so the table can show each
// category relative to its maximum.
var subscoreCaps = []struct {
	name  string
	limit int
	score func(b model.HealthBreakdown) int
}{
	{"Documentation", 30, func(b model.HealthBreakdown) int { return b.Documentation }},
	{"Maintenance", 25, func(b model.HealthBreakdown) int { return b.Maintenance }},
	{"Community", 20, func(b model.HealthBreakdown) int { return b.Community }},
	{"Issue response", 15, func(b model.HealthBreakdown) int { return b.IssueResponse }},
	{"Code quality", 10, func(b model.HealthBreakdown) int { return b.CodeQuality }},
}

func printHealth(w io.Writer, health *model.RepoHealthScore) {
	fmt.Fprintf(w, "Health: %s\n", colorScore(health.Overall))

	const colName = 16
	for _, c := range subscoreCaps {
		score := c.score(health.Breakdown)
		icon := format.StatusIcon(format.SubscoreStatus(score, c.limit))
		icon = padRight(icon, format.DisplayWidth(icon), format.IconWidth)
		fmt.Fprintf(w, "  %s%-*s %d/%d\n", icon, colName, c.name, score, c.limit)
	}
	fmt.Fprintln(w)
	printRecommendations(w, health.Recommendations)
}

func printQuality(w io.Writer, q *model.CodeQualityMetrics) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Code quality"))
	fmt.Fprintf(w, "  Average review time   %.1fh\n", q.AveragePRReviewTime)
	fmt.Fprintf(w, "  Median review time    %.1fh\n", q.MedianPRReviewTime)
	fmt.Fprintf(w, "  Churn per commit      %d lines\n", q.AverageChurnPerCommit)
	fmt.Fprintf(w, "  Dependencies          %d total, %d outdated\n", q.DependencyHealth.Total, q.DependencyHealth.Outdated)
	if last := lastActiveDay(q.CodeChurn); last != "" {
		fmt.Fprintf(w, "  Last active day       %s\n", last)
	}
	fmt.Fprintln(w)
	printRecommendations(w, q.Recommendations)
}

func printPRs(w io.Writer, prs *model.PRAnalytics) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Pull requests"))
	fmt.Fprintf(w, "  Total %d: %s merged, %s closed, %s open\n",
		prs.TotalPRs,
		color.GreenString("%d", prs.MergedPRs),
		color.RedString("%d", prs.ClosedPRs),
		color.YellowString("%d", prs.OpenPRs))
	fmt.Fprintf(w, "  Merge success rate    %.1f%%\n", prs.SuccessRate)
	fmt.Fprintf(w, "  Review turnaround     %.1fh\n", prs.AverageReviewTurnaroundTime)
	fmt.Fprintf(w, "  Sizes                 %d small / %d medium / %d large\n",
		prs.PRSizeAnalysis.Small, prs.PRSizeAnalysis.Medium, prs.PRSizeAnalysis.Large)

	maxCount := 0
	for _, bucket := range prs.MergeTimeDistribution {
		if bucket.Count > maxCount {
			maxCount = bucket.Count
		}
	}
	if maxCount > 0 {
		fmt.Fprintln(w, "  Time to merge:")
		for _, bucket := range prs.MergeTimeDistribution {
			fmt.Fprintf(w, "    %-6s %-20s %d\n", bucket.Range, bar(bucket.Count, maxCount, 20), bucket.Count)
		}
	}
	if len(prs.ActiveReviewers) > 0 {
		fmt.Fprintln(w, "  Top reviewers:")
		for _, r := range prs.ActiveReviewers {
			login, width := format.TruncateToWidth(r.Login, 20)
			fmt.Fprintf(w, "    %s %d\n", padRight(login, width, 20), r.Reviews)
		}
	}
	fmt.Fprintln(w)
}

func printDeps(w io.Writer, graph *model.DependencyGraph, health *model.DependencyHealth) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Dependencies"))
	fmt.Fprintf(w, "  Direct %d, dev %d\n", graph.TotalDependencies, graph.TotalDevDependencies)
	if len(graph.Ecosystems) > 0 {
		names := make([]string, 0, len(graph.Ecosystems))
		for _, e := range graph.Ecosystems {
			names = append(names, string(e))
		}
		fmt.Fprintf(w, "  Ecosystems: %s\n", strings.Join(names, ", "))
	}
	if health != nil && health.Total > 0 {
		fmt.Fprintf(w, "  Pinned %s, version ranges %s\n",
			color.GreenString("%d", health.Latest),
			color.YellowString("%d", health.Outdated))
	}
	fmt.Fprintln(w)
}

func printNetwork(w io.Writer, net *model.CollaborationNetwork) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Collaboration network"))
	fmt.Fprintf(w, "  %d collaborators across %d repositories\n", net.TotalCollaborators, net.TotalRepos)
	if net.MostActiveCollaborator != nil {
		fmt.Fprintf(w, "  Most active: %s (%d contributions)\n",
			net.MostActiveCollaborator.Login, net.MostActiveCollaborator.Contributions)
	}
	if len(net.Nodes) > 0 {
		const colLogin = 24
		fmt.Fprintf(w, "\n  %-*s  %s\n", colLogin, "Collaborator", "Contributions")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", colLogin+15))
		for _, node := range net.Nodes {
			login, width := format.TruncateToWidth(node.Login, colLogin)
			linked := hyperlink(login, "https://github.com/"+node.Login)
			fmt.Fprintf(w, "  %s  %d\n", padRight(linked, width, colLogin), node.Contributions)
		}
	}
	if len(net.Edges) > 0 {
		fmt.Fprintln(w, "\n  Strongest review pairs:")
		for _, e := range net.Edges {
			fmt.Fprintf(w, "    %s <-> %s  (%d reviews)\n", e.Source, e.Target, e.Weight)
		}
	}
	fmt.Fprintln(w)
}

func printRecommendations(w io.Writer, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Recommendations"))
	for _, r := range recs {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	fmt.Fprintln(w)
}

// lastActiveDay describes the newest day in the churn series, with its age.
func lastActiveDay(churn []model.CodeChurnDay) string {
	if len(churn) == 0 {
		return ""
	}
	last := churn[len(churn)-1]
	day, err := time.Parse("2006-01-02", last.Date)
	if err != nil {
		return last.Date
	}
	return fmt.Sprintf("%s (%s ago, %d commits)", last.Date, format.FormatAge(time.Since(day)), last.Commits)
}

// bar renders a histogram bar scaled so the largest bucket fills maxWidth.
func bar(count, maxCount, maxWidth int) string {
	if count <= 0 || maxCount <= 0 {
		return ""
	}
	n := count * maxWidth / maxCount
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// colorScore renders the overall score with a grade, colored by band.
func colorScore(score int) string {
	text := format.FormatScore(score)
	switch format.ScoreGrade(score) {
	case format.GradeA, format.GradeB:
		return color.GreenString(text)
	case format.GradeC:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
