package model

import (
	"testing"
	"time"
)

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, loc)
	night := time.Date(2024, 6, 1, 23, 59, 59, 0, loc)

	if DayKey(morning) != DayKey(night) {
		t.Fatalf("keys differ for same day: %q vs %q", DayKey(morning), DayKey(night))
	}
	if got := DayKey(morning); got != "2024-06-01" {
		t.Fatalf("DayKey = %q, want 2024-06-01", got)
	}
}

func TestDayKeyDistinctDays(t *testing.T) {
	a := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)
	b := a.Add(time.Second)

	if DayKey(a) == DayKey(b) {
		t.Fatalf("adjacent days share key %q", DayKey(a))
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	key := "2024-02-29"
	d, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey(%q): %v", key, err)
	}
	if got := DayKey(d); got != key {
		t.Fatalf("round trip = %q, want %q", got, key)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("parsed key not at midnight: %v", d)
	}
}

func TestParseDayKeyRejectsGarbage(t *testing.T) {
	if _, err := ParseDayKey("yesterday"); err == nil {
		t.Fatal("ParseDayKey accepted non-date input")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	c := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Fatal("SameDay false for same calendar day")
	}
	if SameDay(a, c) {
		t.Fatal("SameDay true for different days")
	}
}

func TestMidnight(t *testing.T) {
	tm := time.Date(2024, 6, 1, 17, 45, 12, 99, time.UTC)
	m := Midnight(tm)
	if m.Hour() != 0 || m.Minute() != 0 || m.Second() != 0 || m.Nanosecond() != 0 {
		t.Fatalf("Midnight left time components: %v", m)
	}
	if !SameDay(tm, m) {
		t.Fatal("Midnight moved to a different day")
	}
}
