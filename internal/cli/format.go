// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"
)

// FormatDayOfWeek returns a 3-letter uppercase day abbreviation.
// e.g., Monday -> "MON"
func FormatDayOfWeek(d time.Time) string {
	return strings.ToUpper(d.Format("Mon"))
}

// FormatMonth returns the 3-letter month abbreviation. e.g., "Jun"
func FormatMonth(d time.Time) string {
	return d.Format("Jan")
}

// FormatDate returns a compact human date. e.g., "Sat, Jun 1"
func FormatDate(d time.Time) string {
	return d.Format("Mon, Jan 2")
}

// Greeting returns the time-of-day greeting word for t's hour.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Morning"
	case h < 17:
		return "Afternoon"
	case h < 21:
		return "Evening"
	default:
		return "Night"
	}
}

// Bar renders a textual progress bar of the given width.
// e.g., Bar(3, 10, 10) -> "███░░░░░░░"
func Bar(current, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	filled := current * width / max

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatCount renders "current | max". e.g., "3 | 10"
func FormatCount(current, max int) string {
	return fmt.Sprintf("%d | %d", current, max)
}
