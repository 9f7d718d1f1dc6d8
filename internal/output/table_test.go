package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/dlucca/gitgauge/internal/model"
)

func TestTableFormatHealth(t *testing.T) {
	color.NoColor = true
	f := &TableFormatter{}
	var buf bytes.Buffer

	report := Report{
		Repo: "octocat/hello-world",
		Health: &model.RepoHealthScore{
			Overall: 78,
			Breakdown: model.HealthBreakdown{
				Documentation: 25,
				Maintenance:   20,
				Community:     14,
				IssueResponse: 12,
				CodeQuality:   7,
			},
			Recommendations: []string{"Add a CONTRIBUTING.md to guide new contributors"},
			LastCalculated:  time.Now(),
		},
	}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "octocat/hello-world") {
		t.Errorf("expected repo name in output, got:\n%s", out)
	}
	if !strings.Contains(out, "B (78/100)") {
		t.Errorf("expected graded score, got:\n%s", out)
	}
	if !strings.Contains(out, "Documentation") || !strings.Contains(out, "25/30") {
		t.Errorf("expected documentation subscore, got:\n%s", out)
	}
	if !strings.Contains(out, "CONTRIBUTING.md") {
		t.Errorf("expected recommendation, got:\n%s", out)
	}
}

func TestTableFormatPRs(t *testing.T) {
	color.NoColor = true
	f := &TableFormatter{}
	var buf bytes.Buffer

	report := Report{
		Repo: "octocat/hello-world",
		PRs: &model.PRAnalytics{
			MergeTimeDistribution: []model.MergeTimeBucket{
				{Range: "0-24h", Count: 4},
				{Range: "1-7d", Count: 2},
			},
			AverageReviewTurnaroundTime: 5.3,
			PRSizeAnalysis:              model.PRSizeAnalysis{Small: 3, Medium: 2, Large: 1},
			ActiveReviewers:             []model.ActiveReviewer{{Login: "alice", Reviews: 7}},
			SuccessRate:                 66.7,
			TotalPRs:                    6,
			MergedPRs:                   4,
			ClosedPRs:                   1,
			OpenPRs:                     1,
		},
	}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "66.7%") {
		t.Errorf("expected success rate, got:\n%s", out)
	}
	if !strings.Contains(out, "0-24h") || !strings.Contains(out, "1-7d") {
		t.Errorf("expected merge time buckets, got:\n%s", out)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("expected reviewer, got:\n%s", out)
	}
}

func TestTableFormatNetwork(t *testing.T) {
	color.NoColor = true
	f := &TableFormatter{}
	var buf bytes.Buffer

	report := Report{
		User: "octocat",
		Network: &model.CollaborationNetwork{
			Nodes: []model.CollaborationNode{
				{ID: "alice", Login: "alice", Contributions: 42, Type: "user"},
				{ID: "bob", Login: "bob", Contributions: 10, Type: "user"},
			},
			Edges: []model.CollaborationEdge{
				{Source: "alice", Target: "bob", Weight: 3},
			},
			TotalCollaborators:     2,
			TotalRepos:             5,
			MostActiveCollaborator: &model.Collaborator{Login: "alice", Contributions: 42},
		},
	}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "2 collaborators across 5 repositories") {
		t.Errorf("expected summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "Most active: alice (42 contributions)") {
		t.Errorf("expected most active line, got:\n%s", out)
	}
	if !strings.Contains(out, "alice <-> bob") {
		t.Errorf("expected review pair, got:\n%s", out)
	}
}

func TestBarScaling(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		maxCount int
		want     int
	}{
		{"full", 10, 10, 20},
		{"half", 5, 10, 10},
		{"tiny rounds up to one", 1, 100, 1},
		{"zero", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := len([]rune(bar(tt.count, tt.maxCount, 20)))
			if got != tt.want {
				t.Errorf("bar(%d, %d, 20) width = %d, want %d", tt.count, tt.maxCount, got, tt.want)
			}
		})
	}
}
