// Package window generates the selectable strip of calendar days
// surrounding today for the date picker.
package window

import (
	"time"

	"github.com/theirongolddev/habit/internal/model"
)

// DefaultRadius is the number of days shown on each side of today.
const DefaultRadius = 10

// Window is an ordered run of consecutive days centered on today plus
// a selection cursor. It is derived from the wall clock and never
// persisted; rebuild it whenever "today" may have moved.
type Window struct {
	days     []time.Time
	today    time.Time
	selected time.Time
}

// New builds a window of 2*radius+1 days centered on today, ascending,
// with the selection cursor on today. A radius below zero is treated
// as zero.
func New(today time.Time, radius int) *Window {
	if radius < 0 {
		radius = 0
	}
	base := model.Midnight(today)
	days := make([]time.Time, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		days = append(days, base.AddDate(0, 0, i))
	}
	return &Window{days: days, today: base, selected: base}
}

// Days returns the window's dates in chronological order.
func (w *Window) Days() []time.Time {
	return w.days
}

// Today returns the day the window was generated around.
func (w *Window) Today() time.Time {
	return w.today
}

// Select moves the cursor to d. Selection is decoupled from
// generation: any date may be selected, inside the window or not.
func (w *Window) Select(d time.Time) {
	w.selected = model.Midnight(d)
}

// Selected returns the date under the cursor.
func (w *Window) Selected() time.Time {
	return w.selected
}

// SelectedKey returns the day key of the date under the cursor.
func (w *Window) SelectedKey() string {
	return model.DayKey(w.selected)
}

// IsSelected reports whether d is the selected day.
func (w *Window) IsSelected(d time.Time) bool {
	return model.SameDay(d, w.selected)
}

// IsToday reports whether d is the window's today.
func (w *Window) IsToday(d time.Time) bool {
	return model.SameDay(d, w.today)
}

// ShiftSelection moves the cursor n days forward (negative n moves
// back). Keyboard navigation helper.
func (w *Window) ShiftSelection(n int) {
	w.selected = w.selected.AddDate(0, 0, n)
}

// SelectedIndex returns the position of the selected day within the
// window, or -1 when the selection lies outside it.
func (w *Window) SelectedIndex() int {
	for i, d := range w.days {
		if w.IsSelected(d) {
			return i
		}
	}
	return -1
}
