package format

// Status classifies a subscore against its cap for display.
type Status int

const (
	// StatusGood indicates the subscore is at or above two thirds of its cap.
	StatusGood Status = iota
	// StatusWarn indicates the subscore is between one and two thirds.
	StatusWarn
	// StatusBad indicates the subscore is below one third of its cap.
	StatusBad
)

// SubscoreStatus buckets a subscore relative to its cap. A zero cap is
// treated as good so a disabled category never renders as failing.
func SubscoreStatus(score, limit int) Status {
	if limit <= 0 {
		return StatusGood
	}
	switch {
	case score*3 >= limit*2:
		return StatusGood
	case score*3 >= limit:
		return StatusWarn
	default:
		return StatusBad
	}
}

// Icon strings for display (renderers can apply their own styling).
const (
	// GoodIcon marks a healthy subscore.
	GoodIcon = "✅" // ✅

	// WarnIcon marks a subscore that needs attention.
	// U+26A0 + U+FE0F forces emoji presentation for consistent 2-column width.
	WarnIcon = "⚠️" // ⚠️

	// BadIcon marks a failing subscore.
	BadIcon = "❌" // ❌

	// IconWidth is the display width reserved for the icon column (emoji=2 + space=1).
	IconWidth = 3
)

// StatusIcon returns the icon for a status.
func StatusIcon(s Status) string {
	switch s {
	case StatusWarn:
		return WarnIcon
	case StatusBad:
		return BadIcon
	default:
		return GoodIcon
	}
}
