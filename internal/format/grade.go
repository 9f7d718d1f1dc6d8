package format

import "fmt"

// Grade is a letter summary of a 0-100 score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// ScoreGrade maps an overall health score to a letter grade.
func ScoreGrade(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 75:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 40:
		return GradeD
	default:
		return GradeF
	}
}

// FormatScore renders a score with its grade, e.g. "B (78/100)".
func FormatScore(score int) string {
	return fmt.Sprintf("%s (%d/100)", ScoreGrade(score), score)
}
