package syncer

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/theirongolddev/habit/internal/ledger"
	"github.com/theirongolddev/habit/internal/model"
)

// fakeGateway records saves and can block or fail them on demand.
type fakeGateway struct {
	loadSnap model.Snapshot

	mu        sync.Mutex
	saves     []model.Snapshot
	failSaves int

	started chan struct{} // signaled on Save entry, if non-nil
	gate    chan struct{} // Save blocks until closed, if non-nil
}

func (g *fakeGateway) Load(_ context.Context, defaultTheme model.Theme) model.Snapshot {
	snap := g.loadSnap
	if snap.Days == nil {
		snap.Days = make(map[string]model.Record)
	}
	if snap.Theme == "" {
		snap.Theme = defaultTheme
	}
	return snap
}

func (g *fakeGateway) Save(_ context.Context, snap model.Snapshot) error {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.gate != nil {
		<-g.gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failSaves > 0 {
		g.failSaves--
		return errors.New("storage unavailable")
	}
	g.saves = append(g.saves, snap.Clone())
	return nil
}

func (g *fakeGateway) savedSnapshots() []model.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Snapshot, len(g.saves))
	copy(out, g.saves)
	return out
}

var quiet = log.New(io.Discard, "", 0)

// newTestController returns a controller pinned to a fixed "today".
func newTestController(t *testing.T, gw *fakeGateway) (*Controller, time.Time) {
	t.Helper()
	today, err := model.ParseDayKey("2024-06-01")
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}
	c := New(gw, quiet)
	c.now = func() time.Time { return today.Add(9 * time.Hour) }
	t.Cleanup(c.Close)
	return c, today
}

func TestMutationsRejectedWhileLoading(t *testing.T) {
	c, today := newTestController(t, &fakeGateway{})

	if c.State() != StateLoading {
		t.Fatalf("initial state = %v, want StateLoading", c.State())
	}
	if _, err := c.Increment(today, model.Hydration); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Increment before load error = %v, want ErrNotReady", err)
	}
	if err := c.SetTheme(model.ThemeDark); !errors.Is(err, ErrNotReady) {
		t.Fatalf("SetTheme before load error = %v, want ErrNotReady", err)
	}
}

func TestLoadEntersReadyWithStoredState(t *testing.T) {
	gw := &fakeGateway{
		loadSnap: model.Snapshot{
			Profile: model.Profile{Name: "Ada", CurrentDay: 12},
			Days:    map[string]model.Record{"2024-05-30": {Reading: 3}},
			Theme:   model.ThemeDark,
		},
	}
	c, _ := newTestController(t, gw)
	c.Load(context.Background(), model.ThemeLight)

	if !c.Ready() {
		t.Fatal("controller not ready after load")
	}
	if c.Profile().Name != "Ada" {
		t.Fatalf("profile name = %q, want Ada", c.Profile().Name)
	}
	if c.Theme() != model.ThemeDark {
		t.Fatalf("theme = %q, want dark", c.Theme())
	}
	old, err := model.ParseDayKey("2024-05-30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := c.Record(old).Reading; got != 3 {
		t.Fatalf("loaded reading = %d, want 3", got)
	}
}

func TestLoadRunsOnce(t *testing.T) {
	gw := &fakeGateway{}
	c, today := newTestController(t, gw)
	ctx := context.Background()

	c.Load(ctx, model.ThemeLight)
	if _, err := c.Increment(today, model.Hydration); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	// A second load must not overwrite the mutated ledger.
	c.Load(ctx, model.ThemeLight)
	if got := c.Record(today).Hydration; got != 1 {
		t.Fatalf("hydration after second load = %d, want 1", got)
	}
}

func TestEditabilityEnforcedThroughController(t *testing.T) {
	c, today := newTestController(t, &fakeGateway{})
	c.Load(context.Background(), model.ThemeLight)

	yesterday := today.AddDate(0, 0, -1)
	if c.IsEditable(yesterday) {
		t.Fatal("yesterday reported editable")
	}
	if !c.IsEditable(today) {
		t.Fatal("today reported not editable")
	}
	if _, err := c.ToggleCleanFood(yesterday); !errors.Is(err, ledger.ErrNotEditable) {
		t.Fatalf("past-day toggle error = %v, want ErrNotEditable", err)
	}
	if c.HasEntry(yesterday) {
		t.Fatal("rejected mutation materialized yesterday")
	}
}

func TestMutationPersistsFullSnapshot(t *testing.T) {
	gw := &fakeGateway{}
	c, today := newTestController(t, gw)
	c.Load(context.Background(), model.ThemeLight)

	if _, err := c.Set(today, model.Hydration, 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c.Close()

	saves := gw.savedSnapshots()
	if len(saves) == 0 {
		t.Fatal("no save after mutation")
	}
	last := saves[len(saves)-1]
	if got := last.Days[model.DayKey(today)].Hydration; got != 5 {
		t.Fatalf("persisted hydration = %d, want 5", got)
	}
	if last.Profile.Name != "User" {
		t.Fatalf("snapshot missing profile: %+v", last.Profile)
	}
	if last.Theme != model.ThemeLight {
		t.Fatalf("snapshot theme = %q, want light", last.Theme)
	}
}

func TestOverlappingSavesCoalesce(t *testing.T) {
	gw := &fakeGateway{
		started: make(chan struct{}, 8),
		gate:    make(chan struct{}),
	}
	c, today := newTestController(t, gw)
	c.Load(context.Background(), model.ThemeLight)

	if _, err := c.Set(today, model.Hydration, 5); err != nil {
		t.Fatalf("Set hydration: %v", err)
	}
	// Wait until the flusher is inside Save with the first snapshot,
	// then pile on two more mutations. They must collapse into one
	// pending snapshot carrying both changes.
	<-gw.started
	if _, err := c.Set(today, model.Workouts, 1); err != nil {
		t.Fatalf("Set workouts: %v", err)
	}
	if _, err := c.Set(today, model.Reading, 2); err != nil {
		t.Fatalf("Set reading: %v", err)
	}
	close(gw.gate)
	c.Close()

	saves := gw.savedSnapshots()
	if len(saves) != 2 {
		t.Fatalf("save count = %d, want 2 (one in flight + one coalesced)", len(saves))
	}
	final := saves[len(saves)-1].Days[model.DayKey(today)]
	if final.Hydration != 5 || final.Workouts != 1 || final.Reading != 2 {
		t.Fatalf("final persisted record = %+v, want all three changes", final)
	}
}

func TestFailedSaveRetriedByNextMutation(t *testing.T) {
	gw := &fakeGateway{failSaves: 1}
	c, today := newTestController(t, gw)
	c.Load(context.Background(), model.ThemeLight)

	if _, err := c.Set(today, model.Hydration, 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// The first save fails and is dropped. The next mutation carries
	// the whole current state forward.
	if _, err := c.Set(today, model.Workouts, 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c.Close()

	saves := gw.savedSnapshots()
	if len(saves) == 0 {
		t.Fatal("no successful save after a dropped one")
	}
	final := saves[len(saves)-1].Days[model.DayKey(today)]
	if final.Hydration != 3 || final.Workouts != 1 {
		t.Fatalf("final record = %+v, want hydration 3 and workouts 1", final)
	}
}

func TestThemeAndProfileChangesPersist(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newTestController(t, gw)
	c.Load(context.Background(), model.ThemeLight)

	theme, err := c.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if theme != model.ThemeDark {
		t.Fatalf("toggled theme = %q, want dark", theme)
	}

	p := c.Profile()
	p.Name = "Ada"
	p.CurrentDay = 7
	if err := c.SetProfile(p); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}
	c.Close()

	saves := gw.savedSnapshots()
	if len(saves) == 0 {
		t.Fatal("no saves recorded")
	}
	last := saves[len(saves)-1]
	if last.Theme != model.ThemeDark {
		t.Fatalf("persisted theme = %q, want dark", last.Theme)
	}
	if last.Profile.Name != "Ada" || last.Profile.CurrentDay != 7 {
		t.Fatalf("persisted profile = %+v", last.Profile)
	}
}
