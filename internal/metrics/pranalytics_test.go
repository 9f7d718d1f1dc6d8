package metrics

import (
	"testing"
	"time"

	"github.com/dlucca/gitgauge/internal/model"
)

func TestAnalyzePRsEmpty(t *testing.T) {
	got := AnalyzePRs(nil, nil, 720)

	if got.TotalPRs != 0 || got.SuccessRate != 0 {
		t.Errorf("AnalyzePRs(nil) = %+v, want zero counts", got)
	}
	if got.MergeTimeDistribution == nil || len(got.MergeTimeDistribution) != 0 {
		t.Errorf("MergeTimeDistribution = %v, want empty non-nil slice", got.MergeTimeDistribution)
	}
	if got.ActiveReviewers == nil || len(got.ActiveReviewers) != 0 {
		t.Errorf("ActiveReviewers = %v, want empty non-nil slice", got.ActiveReviewers)
	}
}

func TestAnalyzePRsMergeTimeDistribution(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mergedAfter := func(d time.Duration) model.PullRequest {
		return model.PullRequest{State: "closed", CreatedAt: base, MergedAt: tp(base.Add(d))}
	}

	detailed := []model.PullRequest{
		mergedAfter(2 * time.Hour),    // 0-24h
		mergedAfter(30 * time.Hour),   // 1-7d
		mergedAfter(200 * time.Hour),  // 1-4w
		mergedAfter(700 * time.Hour),  // 1-3m
		mergedAfter(3000 * time.Hour), // 3m+
		mergedAfter(23 * time.Hour),   // 0-24h
	}

	got := AnalyzePRs(detailed, detailed, 720)

	want := map[string]int{"0-24h": 2, "1-7d": 1, "1-4w": 1, "1-3m": 1, "3m+": 1}
	if len(got.MergeTimeDistribution) != 5 {
		t.Fatalf("len(MergeTimeDistribution) = %d, want 5", len(got.MergeTimeDistribution))
	}
	for _, b := range got.MergeTimeDistribution {
		if b.Count != want[b.Range] {
			t.Errorf("bucket %q = %d, want %d", b.Range, b.Count, want[b.Range])
		}
	}
}

func TestAnalyzePRsSizeSplit(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	detailed := []model.PullRequest{
		{State: "open", CreatedAt: base, Additions: 40, Deletions: 10},   // 50: small
		{State: "open", CreatedAt: base, Additions: 90, Deletions: 10},   // 100: medium
		{State: "open", CreatedAt: base, Additions: 300, Deletions: 150}, // 450: medium
		{State: "open", CreatedAt: base, Additions: 600, Deletions: 0},   // 600: large
	}

	got := AnalyzePRs(detailed, detailed, 720)
	if got.PRSizeAnalysis.Small != 1 || got.PRSizeAnalysis.Medium != 2 || got.PRSizeAnalysis.Large != 1 {
		t.Errorf("PRSizeAnalysis = %+v, want {1 2 1}", got.PRSizeAnalysis)
	}
}

func TestAnalyzePRsCountsAndSuccessRate(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	all := []model.PullRequest{
		{State: "closed", CreatedAt: base, MergedAt: tp(base.Add(time.Hour))},
		{State: "closed", CreatedAt: base, MergedAt: tp(base.Add(time.Hour))},
		{State: "closed", CreatedAt: base}, // closed without merging
		{State: "open", CreatedAt: base},
		{State: "open", CreatedAt: base},
		{State: "open", CreatedAt: base},
	}

	got := AnalyzePRs(all, nil, 720)

	if got.TotalPRs != 6 || got.MergedPRs != 2 || got.ClosedPRs != 1 || got.OpenPRs != 3 {
		t.Errorf("counts = total %d merged %d closed %d open %d, want 6/2/1/3",
			got.TotalPRs, got.MergedPRs, got.ClosedPRs, got.OpenPRs)
	}
	if want := 33.3; got.SuccessRate != want {
		t.Errorf("SuccessRate = %v, want %v", got.SuccessRate, want)
	}
}

func TestAnalyzePRsReviewerLeaderboard(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	pr := func(reviewers ...string) model.PullRequest {
		p := model.PullRequest{State: "open", CreatedAt: base}
		for _, r := range reviewers {
			p.Reviews = append(p.Reviews, model.Review{
				Reviewer:    r,
				SubmittedAt: tp(base.Add(time.Hour)),
				State:       model.ReviewCommented,
			})
		}
		return p
	}

	detailed := []model.PullRequest{
		pr("alice", "bob"),
		pr("alice"),
		pr("alice", "carol"),
		pr("bob"),
	}

	got := AnalyzePRs(detailed, detailed, 720)

	if len(got.ActiveReviewers) != 3 {
		t.Fatalf("len(ActiveReviewers) = %d, want 3", len(got.ActiveReviewers))
	}
	if got.ActiveReviewers[0].Login != "alice" || got.ActiveReviewers[0].Reviews != 3 {
		t.Errorf("top reviewer = %+v, want alice with 3", got.ActiveReviewers[0])
	}
	if got.ActiveReviewers[1].Login != "bob" || got.ActiveReviewers[1].Reviews != 2 {
		t.Errorf("second reviewer = %+v, want bob with 2", got.ActiveReviewers[1])
	}
}

func TestAnalyzePRsTurnaroundRounding(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	detailed := []model.PullRequest{
		{
			State:     "open",
			CreatedAt: base,
			Reviews: []model.Review{
				{Reviewer: "a", SubmittedAt: tp(base.Add(5*time.Hour + 20*time.Minute)), State: model.ReviewCommented},
			},
		},
	}

	got := AnalyzePRs(detailed, detailed, 720)
	if want := 5.3; got.AverageReviewTurnaroundTime != want {
		t.Errorf("AverageReviewTurnaroundTime = %v, want %v", got.AverageReviewTurnaroundTime, want)
	}
}
