package metrics

import (
	"sort"

	"github.com/dlucca/gitgauge/internal/model"
)

// ReviewTimes measures how long pull requests wait for their first review,
// in hours. Times to first approval are preferred when any exist; otherwise
// the first review of any kind counts. Samples outside (0, maxHours) are
// discarded. The median is taken over the full sorted sample while the
// average is computed over an IQR-filtered copy, so a couple of PRs that
// sat for weeks do not drown out the typical turnaround.
func ReviewTimes(prs []model.PullRequest, maxHours float64) (average, median float64) {
	var anyTimes, approvedTimes []float64

	for _, pr := range prs {
		reviews := sortedReviews(pr.Reviews)
		if len(reviews) == 0 {
			continue
		}

		hours := reviews[0].SubmittedAt.Sub(pr.CreatedAt).Hours()
		if hours > 0 && hours < maxHours {
			anyTimes = append(anyTimes, hours)
		}

		for _, r := range reviews {
			if r.State != model.ReviewApproved {
				continue
			}
			hours := r.SubmittedAt.Sub(pr.CreatedAt).Hours()
			if hours > 0 && hours < maxHours {
				approvedTimes = append(approvedTimes, hours)
			}
			break
		}
	}

	times := anyTimes
	if len(approvedTimes) > 0 {
		times = approvedTimes
	}
	if len(times) == 0 {
		return 0, 0
	}

	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)

	filtered := iqrFilter(sorted)

	median = medianOf(sorted)
	if len(filtered) > 0 {
		average = mean(filtered)
	} else {
		average = mean(sorted)
	}
	return average, median
}

// sortedReviews returns the reviews that carry a submission time, ordered
// oldest first.
func sortedReviews(reviews []model.Review) []model.Review {
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.SubmittedAt != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(*out[j].SubmittedAt)
	})
	return out
}

// iqrFilter keeps values within [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Quartiles use
// the floor-index convention on the sorted input.
func iqrFilter(sorted []float64) []float64 {
	n := len(sorted)
	q1 := sorted[n*25/100]
	q3 := sorted[n*75/100]
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	out := make([]float64, 0, n)
	for _, v := range sorted {
		if v >= lower && v <= upper {
			out = append(out, v)
		}
	}
	return out
}

func medianOf(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
