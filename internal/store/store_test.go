package store

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/habit/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "habit.db"), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadFreshStoreReturnsDefaults(t *testing.T) {
	s := openTestStore(t)
	snap := s.Load(context.Background(), model.ThemeLight)

	if !snap.FirstRun {
		t.Fatal("FirstRun false on empty store")
	}
	if snap.Profile.Name != "User" {
		t.Fatalf("default name = %q, want User", snap.Profile.Name)
	}
	if snap.Profile.CurrentDay != 1 {
		t.Fatalf("default currentDay = %d, want 1", snap.Profile.CurrentDay)
	}
	if len(snap.Days) != 0 {
		t.Fatalf("default ledger has %d days, want 0", len(snap.Days))
	}
	if snap.Theme != model.ThemeLight {
		t.Fatalf("default theme = %q, want light", snap.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := model.Snapshot{
		Profile: model.Profile{
			Name:       "Ada",
			StartDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			CurrentDay: 32,
		},
		Days: map[string]model.Record{
			"2024-06-01": {Hydration: 4, Workouts: 1, Reading: 9, CleanFood: true},
			"2024-06-02": {},
		},
		Theme: model.ThemeDark,
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := s.Load(ctx, model.ThemeLight)
	if out.FirstRun {
		t.Fatal("FirstRun true after a save")
	}
	if out.Profile.Name != "Ada" || out.Profile.CurrentDay != 32 {
		t.Fatalf("profile = %+v", out.Profile)
	}
	if len(out.Days) != 2 {
		t.Fatalf("ledger has %d days, want 2", len(out.Days))
	}
	if out.Days["2024-06-01"] != in.Days["2024-06-01"] {
		t.Fatalf("day record = %+v, want %+v", out.Days["2024-06-01"], in.Days["2024-06-01"])
	}
	if rec, ok := out.Days["2024-06-02"]; !ok || rec != (model.Record{}) {
		t.Fatal("explicit zero day lost in round trip")
	}
	if out.Theme != model.ThemeDark {
		t.Fatalf("theme = %q, want dark", out.Theme)
	}
}

func TestSaveOverwritesPriorState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := model.Snapshot{
		Profile: model.DefaultProfile(time.Now()),
		Days:    map[string]model.Record{"2024-06-01": {Hydration: 5}},
		Theme:   model.ThemeLight,
	}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := first.Clone()
	second.Days["2024-06-01"] = model.Record{Hydration: 5, Workouts: 1}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := s.Load(ctx, model.ThemeLight)
	if got := out.Days["2024-06-01"]; got != second.Days["2024-06-01"] {
		t.Fatalf("record = %+v, want the later snapshot's %+v", got, second.Days["2024-06-01"])
	}
}

func TestCorruptKeysDegradeIndependently(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := model.Snapshot{
		Profile: model.Profile{Name: "Ada", CurrentDay: 3},
		Days:    map[string]model.Record{"2024-06-01": {Reading: 2}},
		Theme:   model.ThemeDark,
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Corrupt only the ledger document.
	if err := s.setValue(ctx, keyProgressData, "{not json"); err != nil {
		t.Fatalf("setValue: %v", err)
	}

	out := s.Load(ctx, model.ThemeLight)
	if len(out.Days) != 0 {
		t.Fatalf("corrupt ledger loaded %d days, want empty reset", len(out.Days))
	}
	if out.Profile.Name != "Ada" {
		t.Fatalf("profile lost with ledger corruption: %+v", out.Profile)
	}
	if out.Theme != model.ThemeDark {
		t.Fatalf("theme lost with ledger corruption: %q", out.Theme)
	}
}

func TestUnknownStoredThemeFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.setValue(ctx, keyTheme, `"solarized"`); err != nil {
		t.Fatalf("setValue: %v", err)
	}

	out := s.Load(ctx, model.ThemeDark)
	if out.Theme != model.ThemeDark {
		t.Fatalf("theme = %q, want dark fallback", out.Theme)
	}
}
