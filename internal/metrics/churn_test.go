package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/dlucca/gitgauge/internal/model"
)

func TestChurnFiltersMergeAndTrivialCommits(t *testing.T) {
	day := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	commits := []model.Commit{
		{SHA: "a", Message: "tiny fix", AuthorDate: day, Stats: &model.CommitStats{Additions: 2, Deletions: 1, Total: 3}},
		{SHA: "b", Message: "Merge pull request #1", AuthorDate: day, Stats: &model.CommitStats{Additions: 200, Deletions: 200, Total: 400}},
		{SHA: "c", Message: "add parser", AuthorDate: day, Stats: &model.CommitStats{Additions: 40, Deletions: 10, Total: 50}},
	}

	days, avg := Churn(commits)
	if avg != 50 {
		t.Errorf("averageChurnPerCommit = %d, want 50", avg)
	}
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1", len(days))
	}
	if days[0].Commits != 1 || days[0].Additions != 40 || days[0].Deletions != 10 || days[0].NetChange != 30 {
		t.Errorf("day = %+v, want only commit c counted", days[0])
	}
}

func TestChurnDetectsSquashMergeShape(t *testing.T) {
	day := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	// No "merge" prefix, but deletions dwarf additions on a big commit.
	commits := []model.Commit{
		{Message: "remove legacy module", AuthorDate: day, Stats: &model.CommitStats{Additions: 10, Deletions: 300, Total: 310}},
	}

	days, avg := Churn(commits)
	if len(days) != 0 || avg != 0 {
		t.Errorf("Churn() = (%v, %d), want empty", days, avg)
	}
}

func TestChurnSkipsCommitsWithoutStats(t *testing.T) {
	day := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	commits := []model.Commit{
		{Message: "no stats", AuthorDate: day},
		{Message: "real work", AuthorDate: day, Stats: &model.CommitStats{Additions: 8, Deletions: 2, Total: 10}},
	}

	days, avg := Churn(commits)
	if len(days) != 1 || days[0].Commits != 1 {
		t.Fatalf("days = %+v, want one day with one commit", days)
	}
	if avg != 10 {
		t.Errorf("averageChurnPerCommit = %d, want 10", avg)
	}
}

func TestChurnGroupsByUTCDay(t *testing.T) {
	// 23:30 UTC-5 is 04:30 the next day in UTC.
	est := time.FixedZone("EST", -5*3600)
	commits := []model.Commit{
		{Message: "late night", AuthorDate: time.Date(2026, 8, 14, 23, 30, 0, 0, est), Stats: &model.CommitStats{Additions: 5, Deletions: 0, Total: 5}},
		{Message: "morning", AuthorDate: time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC), Stats: &model.CommitStats{Additions: 5, Deletions: 0, Total: 5}},
	}

	days, _ := Churn(commits)
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1 (both commits land on 2026-08-15 UTC)", len(days))
	}
	if days[0].Date != "2026-08-15" {
		t.Errorf("date = %q, want 2026-08-15", days[0].Date)
	}
	if days[0].Commits != 2 {
		t.Errorf("commits = %d, want 2", days[0].Commits)
	}
}

func TestChurnKeepsMostRecentDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	var commits []model.Commit
	for i := 0; i < 40; i++ {
		commits = append(commits, model.Commit{
			Message:    fmt.Sprintf("change %d", i),
			AuthorDate: start.AddDate(0, 0, i),
			Stats:      &model.CommitStats{Additions: 10, Deletions: 0, Total: 10},
		})
	}

	days, _ := Churn(commits)
	if len(days) != 30 {
		t.Fatalf("len(days) = %d, want 30", len(days))
	}
	if got, want := days[0].Date, start.AddDate(0, 0, 10).Format("2006-01-02"); got != want {
		t.Errorf("first kept day = %q, want %q", got, want)
	}
	if got, want := days[29].Date, start.AddDate(0, 0, 39).Format("2006-01-02"); got != want {
		t.Errorf("last kept day = %q, want %q", got, want)
	}
}

func TestChurnEmpty(t *testing.T) {
	days, avg := Churn(nil)
	if len(days) != 0 || avg != 0 {
		t.Errorf("Churn(nil) = (%v, %d), want empty", days, avg)
	}
}
