// Package ledger holds the date-keyed collection of daily progress
// records and enforces the today-only editability rule.
package ledger

import (
	"errors"

	"github.com/theirongolddev/habit/internal/model"
)

// ErrNotEditable is returned when a mutation targets any day other
// than today. Past days are history, future days haven't happened.
var ErrNotEditable = errors.New("only today's entry is editable")

// Ledger maps canonical day keys to progress records. A key is present
// iff the user has touched that day at least once; an absent day reads
// as a zero-valued record but is distinct from an explicitly tracked
// zero day (see HasEntry).
//
// The ledger is not safe for concurrent use; callers serialize access.
type Ledger struct {
	days map[string]model.Record
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{days: make(map[string]model.Record)}
}

// Get returns the record for key, or a zero record if none exists.
func (l *Ledger) Get(key string) model.Record {
	return l.days[key]
}

// HasEntry reports whether key was ever materialized by a mutation.
// The calendar uses this to mark days as logged.
func (l *Ledger) HasEntry(key string) bool {
	_, ok := l.days[key]
	return ok
}

// Len returns the number of materialized days.
func (l *Ledger) Len() int {
	return len(l.days)
}

// IsEditable reports whether key may be mutated given today's key.
// The rule is strict same-day entry: no back-filling, no pre-filling.
func (l *Ledger) IsEditable(key, todayKey string) bool {
	return key == todayKey
}

// Set stores value for a counted metric on key, clamped to [0, max].
// The day's record is materialized if absent; other fields keep their
// current values. Fails with ErrNotEditable for non-today keys.
func (l *Ledger) Set(key, todayKey string, m model.Metric, value int) (model.Record, error) {
	return l.mutate(key, todayKey, func(r *model.Record) {
		setCount(r, m, clamp(value, m.Max()))
	})
}

// Increment bumps a counted metric by one. At the metric's max the
// call is a no-op, not an error.
func (l *Ledger) Increment(key, todayKey string, m model.Metric) (model.Record, error) {
	return l.mutate(key, todayKey, func(r *model.Record) {
		setCount(r, m, clamp(r.Count(m)+1, m.Max()))
	})
}

// Decrement lowers a counted metric by one, a no-op at zero.
func (l *Ledger) Decrement(key, todayKey string, m model.Metric) (model.Record, error) {
	return l.mutate(key, todayKey, func(r *model.Record) {
		setCount(r, m, clamp(r.Count(m)-1, m.Max()))
	})
}

// ToggleCleanFood flips the clean-food flag on key.
func (l *Ledger) ToggleCleanFood(key, todayKey string) (model.Record, error) {
	return l.mutate(key, todayKey, func(r *model.Record) {
		r.CleanFood = !r.CleanFood
	})
}

// SetCleanFood sets the clean-food flag on key.
func (l *Ledger) SetCleanFood(key, todayKey string, v bool) (model.Record, error) {
	return l.mutate(key, todayKey, func(r *model.Record) {
		r.CleanFood = v
	})
}

// mutate runs fn against key's record, materializing it on first
// touch. The editability check is the authoritative guard; the UI is
// expected to disable controls, but the ledger enforces it here too.
func (l *Ledger) mutate(key, todayKey string, fn func(*model.Record)) (model.Record, error) {
	if !l.IsEditable(key, todayKey) {
		return model.Record{}, ErrNotEditable
	}
	rec := l.days[key]
	fn(&rec)
	l.days[key] = rec
	return rec, nil
}

// Snapshot returns a copy of the full mapping for persistence.
func (l *Ledger) Snapshot() map[string]model.Record {
	out := make(map[string]model.Record, len(l.days))
	for k, v := range l.days {
		out[k] = v
	}
	return out
}

// Replace swaps in loaded state, copying the input map.
func (l *Ledger) Replace(days map[string]model.Record) {
	l.days = make(map[string]model.Record, len(days))
	for k, v := range days {
		l.days[k] = v
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func setCount(r *model.Record, m model.Metric, v int) {
	switch m {
	case model.Hydration:
		r.Hydration = v
	case model.Workouts:
		r.Workouts = v
	case model.Reading:
		r.Reading = v
	case model.CleanFood:
		r.CleanFood = v != 0
	}
}
