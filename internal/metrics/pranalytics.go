package metrics

import (
	"math"
	"sort"

	"github.com/dlucca/gitgauge/internal/model"
)

// Merge-time histogram buckets, in hours. Each bucket is [min, max).
var mergeTimeBuckets = []struct {
	label    string
	min, max float64
}{
	{"0-24h", 0, 24},
	{"1-7d", 24, 168},
	{"1-4w", 168, 672},
	{"1-3m", 672, 2160},
	{"3m+", 2160, math.Inf(1)},
}

const (
	smallPRMaxLines  = 100
	mediumPRMaxLines = 500

	maxActiveReviewers = 10
)

// AnalyzePRs builds the pull request analytics report. The full list drives
// the status counts and success rate; the detailed subset, which carries
// diff sizes and reviews, drives the merge-time histogram, the size split,
// the turnaround time and the reviewer leaderboard.
func AnalyzePRs(all, detailed []model.PullRequest, maxReviewHours float64) model.PRAnalytics {
	if len(all) == 0 {
		return model.PRAnalytics{
			MergeTimeDistribution: []model.MergeTimeBucket{},
			ActiveReviewers:       []model.ActiveReviewer{},
		}
	}

	var mergeTimes []float64
	sizes := model.PRSizeAnalysis{}
	var reviewTimes []float64
	reviewerCounts := make(map[string]int)

	for _, pr := range detailed {
		if pr.MergedAt != nil {
			mergeTimes = append(mergeTimes, pr.MergedAt.Sub(pr.CreatedAt).Hours())
		}

		switch total := pr.Additions + pr.Deletions; {
		case total < smallPRMaxLines:
			sizes.Small++
		case total < mediumPRMaxLines:
			sizes.Medium++
		default:
			sizes.Large++
		}

		if reviews := sortedReviews(pr.Reviews); len(reviews) > 0 {
			hours := reviews[0].SubmittedAt.Sub(pr.CreatedAt).Hours()
			if hours > 0 && hours < maxReviewHours {
				reviewTimes = append(reviewTimes, hours)
			}
		}

		for _, r := range pr.Reviews {
			if r.Reviewer != "" {
				reviewerCounts[r.Reviewer]++
			}
		}
	}

	distribution := make([]model.MergeTimeBucket, 0, len(mergeTimeBuckets))
	for _, b := range mergeTimeBuckets {
		count := 0
		for _, t := range mergeTimes {
			if t >= b.min && t < b.max {
				count++
			}
		}
		distribution = append(distribution, model.MergeTimeBucket{Range: b.label, Count: count})
	}

	reviewers := make([]model.ActiveReviewer, 0, len(reviewerCounts))
	for login, n := range reviewerCounts {
		reviewers = append(reviewers, model.ActiveReviewer{Login: login, Reviews: n})
	}
	sort.Slice(reviewers, func(i, j int) bool {
		if reviewers[i].Reviews != reviewers[j].Reviews {
			return reviewers[i].Reviews > reviewers[j].Reviews
		}
		return reviewers[i].Login < reviewers[j].Login
	})
	if len(reviewers) > maxActiveReviewers {
		reviewers = reviewers[:maxActiveReviewers]
	}

	var merged, closed, open int
	for _, pr := range all {
		switch {
		case pr.Merged():
			merged++
		case pr.State == "closed":
			closed++
		case pr.State == "open":
			open++
		}
	}

	return model.PRAnalytics{
		MergeTimeDistribution:       distribution,
		AverageReviewTurnaroundTime: round1(mean(reviewTimes)),
		PRSizeAnalysis:              sizes,
		ActiveReviewers:             reviewers,
		SuccessRate:                 round1(float64(merged) / float64(len(all)) * 100),
		TotalPRs:                    len(all),
		MergedPRs:                   merged,
		ClosedPRs:                   closed,
		OpenPRs:                     open,
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
