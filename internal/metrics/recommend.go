package metrics

import (
	"fmt"

	"github.com/dlucca/gitgauge/internal/model"
)

// Review-time advisory thresholds, in hours.
const (
	reviewTimeSevere   = 72
	reviewTimeSlow     = 48
	reviewTimeOK       = 24
	outdatedPctSevere  = 50
	outdatedPctHigh    = 30
	outdatedPctNotable = 10
	churnVeryLarge     = 1000
	churnLarge         = 500
	churnTiny          = 10
)

// QualityRecommendations derives advisory strings from a computed code
// quality report. At least one string is always returned.
func QualityRecommendations(m model.CodeQualityMetrics) []string {
	var recs []string

	switch avg := m.AveragePRReviewTime; {
	case avg > reviewTimeSevere:
		recs = append(recs, fmt.Sprintf("PR review time is very high (%.1fh). Consider setting review SLAs or automating review assignments.", avg))
	case avg > reviewTimeSlow:
		recs = append(recs, fmt.Sprintf("Consider improving PR review turnaround time (currently %.1f hours). Aim for < 24 hours.", avg))
	case avg > reviewTimeOK:
		recs = append(recs, fmt.Sprintf("PR review time is good but could be improved (currently %.1f hours).", avg))
	}

	dh := m.DependencyHealth
	if dh.Total == 0 {
		recs = append(recs, "Consider adding dependency management for better project organization")
	} else {
		pct := float64(dh.Outdated) / float64(dh.Total) * 100
		switch {
		case pct > outdatedPctSevere:
			recs = append(recs, fmt.Sprintf("High percentage of outdated dependencies (%.0f%%). Prioritize security updates.", pct))
		case pct > outdatedPctHigh:
			recs = append(recs, fmt.Sprintf("Update outdated dependencies (%d/%d) to improve security and compatibility", dh.Outdated, dh.Total))
		case pct > outdatedPctNotable:
			recs = append(recs, fmt.Sprintf("Some dependencies may need updates (%d/%d outdated)", dh.Outdated, dh.Total))
		}
	}

	switch churn := m.AverageChurnPerCommit; {
	case churn > churnVeryLarge:
		recs = append(recs, fmt.Sprintf("Very large commits detected (avg %d lines). Consider breaking changes into smaller, focused commits for better code review.", churn))
	case churn > churnLarge:
		recs = append(recs, fmt.Sprintf("Large commits detected (avg %d lines). Consider breaking down into smaller, focused changes.", churn))
	case churn > 0 && churn < churnTiny:
		recs = append(recs, fmt.Sprintf("Very small commits (avg %d lines). Consider batching related changes together.", churn))
	}

	if len(recs) == 0 {
		recs = append(recs, "Code quality metrics look good! Keep up the great work.")
	}
	return recs
}
