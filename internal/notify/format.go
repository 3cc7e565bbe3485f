package notify

import (
	"fmt"
	"time"
)

// ordinalSuffix returns the English suffix for a day of month. 11, 12
// and 13 take "th" before the %10 table applies.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDateTime renders the one canonical human-readable form used in
// every message body: "3rd September 2026, 10:30 AM".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf(
		"%d%s %s %d, %s",
		t.Day(),
		ordinalSuffix(t.Day()),
		t.Month().String(),
		t.Year(),
		t.Format("3:04 PM"),
	)
}
