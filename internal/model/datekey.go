package model

import "time"

// dayKeyLayout is the canonical calendar-day key format.
const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical key for the calendar day t falls on.
// The key reflects t's wall-clock date, so any two times on the same
// day produce the same key regardless of their time-of-day component.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a canonical day key back into a local-midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// Midnight truncates t to the start of its day, preserving the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
