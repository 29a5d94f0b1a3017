package audio

import (
	"fmt"
	"math"
)

// MaxDuration is the longest duration in seconds taken as a real track.
// Larger values come from bad tags.
const MaxDuration = 1000 * 3600

// ValidDuration reports whether seconds is a finite duration within MaxDuration
func ValidDuration(seconds float64) bool {
	return !math.IsNaN(seconds) && seconds >= 0 && seconds <= MaxDuration
}

// FormatDuration renders seconds as m:ss, or h:mm:ss from one hour on.
// Invalid durations render as 0:00.
func FormatDuration(seconds float64) string {
	if !ValidDuration(seconds) {
		return "0:00"
	}
	total := int64(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
