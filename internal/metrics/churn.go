package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

const (
	// Commits below this many changed lines are noise (version bumps,
	// typo fixes) and excluded from churn.
	minMeaningfulChurn = 5

	// How many of the most recent active days the churn series keeps.
	churnWindowDays = 30
)

// meaningfulCommit reports whether a commit counts toward churn. Merge
// commits are excluded, including squash-merge shapes that delete far more
// than they add.
func meaningfulCommit(c model.Commit) bool {
	if c.Stats == nil {
		return false
	}
	msg := strings.ToLower(c.Message)
	isMerge := strings.HasPrefix(msg, "merge") ||
		(c.Stats.Deletions > c.Stats.Additions*2 && c.Stats.Total > 100)
	return !isMerge && c.Stats.Total >= minMeaningfulChurn
}

// Churn aggregates commit line changes into per-day buckets (UTC calendar
// days) covering the most recent active days, and reports the average churn
// per meaningful commit.
func Churn(commits []model.Commit) ([]model.CodeChurnDay, int) {
	type bucket struct {
		additions, deletions, commits int
	}
	byDate := make(map[string]*bucket)

	var kept, totalChurn int
	for _, c := range commits {
		if !meaningfulCommit(c) {
			continue
		}
		kept++
		totalChurn += c.Stats.Total

		date := c.AuthorDate.UTC().Format("2006-01-02")
		b := byDate[date]
		if b == nil {
			b = &bucket{}
			byDate[date] = b
		}
		b.additions += c.Stats.Additions
		b.deletions += c.Stats.Deletions
		b.commits++
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > churnWindowDays {
		dates = dates[len(dates)-churnWindowDays:]
	}

	days := make([]model.CodeChurnDay, 0, len(dates))
	for _, d := range dates {
		b := byDate[d]
		days = append(days, model.CodeChurnDay{
			Date:      d,
			Additions: b.additions,
			Deletions: b.deletions,
			NetChange: b.additions - b.deletions,
			Commits:   b.commits,
		})
	}

	var avg int
	if kept > 0 {
		avg = int(math.Round(float64(totalChurn) / float64(kept)))
	}
	return days, avg
}
