// Package model defines the domain types for the habit progress engine.
package model

import (
	"fmt"
	"time"
)

// Metric identifies one of the four tracked habits.
type Metric int

const (
	Hydration Metric = iota
	Workouts
	Reading
	CleanFood
)

// Metrics lists all tracked metrics in display order.
var Metrics = []Metric{Hydration, Workouts, Reading, CleanFood}

// Max returns the upper bound for a counted metric. CleanFood is a
// flag and has no count; its max is 1 for rendering purposes.
func (m Metric) Max() int {
	switch m {
	case Hydration:
		return 10
	case Workouts:
		return 2
	case Reading:
		return 10
	default:
		return 1
	}
}

// String returns the metric's storage/CLI name.
func (m Metric) String() string {
	switch m {
	case Hydration:
		return "hydration"
	case Workouts:
		return "workouts"
	case Reading:
		return "reading"
	case CleanFood:
		return "clean"
	default:
		return "unknown"
	}
}

// Unit returns the unit label shown next to a metric's count.
func (m Metric) Unit() string {
	switch m {
	case Hydration:
		return "glasses"
	case Workouts:
		return "sessions"
	case Reading:
		return "pages"
	default:
		return ""
	}
}

// Counted reports whether the metric is a bounded counter (as opposed
// to the clean-food flag).
func (m Metric) Counted() bool {
	return m != CleanFood
}

// ParseMetric maps a CLI name to its metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "hydration", "water":
		return Hydration, nil
	case "workouts", "workout":
		return Workouts, nil
	case "reading", "read":
		return Reading, nil
	case "clean", "cleanfood", "clean-food":
		return CleanFood, nil
	}
	return 0, fmt.Errorf("unknown metric %q (want hydration, workouts, reading, or clean)", name)
}

// Record holds one day's tracked progress. The JSON field names are
// the on-disk storage format.
type Record struct {
	Hydration int  `json:"hydration"`
	Workouts  int  `json:"workouts"`
	Reading   int  `json:"reading"`
	CleanFood bool `json:"cleanFood"`
}

// Count returns the current value of a counted metric.
func (r Record) Count(m Metric) int {
	switch m {
	case Hydration:
		return r.Hydration
	case Workouts:
		return r.Workouts
	case Reading:
		return r.Reading
	default:
		if r.CleanFood {
			return 1
		}
		return 0
	}
}

// Profile holds the tracked user's identity and day counter.
type Profile struct {
	Name       string    `json:"name"`
	StartDate  time.Time `json:"startDate"`
	CurrentDay int       `json:"currentDay"`
}

// DefaultProfile returns the first-launch profile.
func DefaultProfile(now time.Time) Profile {
	return Profile{
		Name:       "User",
		StartDate:  Midnight(now),
		CurrentDay: 1,
	}
}

// Snapshot is a complete copy of the persisted application state:
// the three independently stored documents plus a first-run marker.
type Snapshot struct {
	Profile Profile
	Days    map[string]Record
	Theme   Theme

	// FirstRun is true when no profile had ever been stored. It is
	// derived at load time and never persisted.
	FirstRun bool
}

// Clone deep-copies the snapshot so a background writer can hold it
// without racing in-memory mutations.
func (s Snapshot) Clone() Snapshot {
	days := make(map[string]Record, len(s.Days))
	for k, v := range s.Days {
		days[k] = v
	}
	out := s
	out.Days = days
	return out
}
