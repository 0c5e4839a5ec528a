// Package syncer orchestrates the load-once / save-on-every-change
// lifecycle between the in-memory ledger and the durable store.
package syncer

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/theirongolddev/habit/internal/ledger"
	"github.com/theirongolddev/habit/internal/model"
)

// ErrNotReady is returned for mutations attempted before the initial
// load has resolved. Accepting an edit earlier would risk losing it
// under the load's overwrite.
var ErrNotReady = errors.New("initial state still loading")

// State is the controller lifecycle state.
type State int

const (
	// StateLoading is the initial state, left exactly once.
	StateLoading State = iota
	// StateReady is terminal for the process lifetime.
	StateReady
)

// Gateway is the asynchronous boundary to durable storage.
// *store.Store satisfies it.
type Gateway interface {
	Load(ctx context.Context, defaultTheme model.Theme) model.Snapshot
	Save(ctx context.Context, snap model.Snapshot) error
}

// Controller owns the in-memory working copies (profile, ledger,
// theme) and is the single mutation facade over them. Every successful
// mutation snapshots the whole state into a one-deep pending slot; a
// background flusher persists whatever snapshot is newest when it gets
// there. Overlapping changes coalesce, and because the flusher is the
// only writer, an in-flight save is never interleaved with a newer one.
type Controller struct {
	gw     Gateway
	logger *log.Logger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	profile  model.Profile
	ledger   *ledger.Ledger
	theme    model.Theme
	firstRun bool
	pending  *model.Snapshot

	loadOnce  sync.Once
	closeOnce sync.Once
	wake      chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates a controller in StateLoading. A nil logger defaults to
// stderr. Call Load before mutating, and Close before process exit.
func New(gw Gateway, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(os.Stderr, "[sync] ", log.LstdFlags)
	}
	c := &Controller{
		gw:     gw,
		logger: logger,
		now:    time.Now,
		ledger: ledger.New(),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.flushLoop()
	return c
}

// Load populates the working copies from the gateway and enters
// StateReady. It runs at most once; later calls return immediately
// without touching state. The gateway substitutes defaults on read
// failure, so Load itself cannot fail.
func (c *Controller) Load(ctx context.Context, defaultTheme model.Theme) {
	c.loadOnce.Do(func() {
		snap := c.gw.Load(ctx, defaultTheme)

		c.mu.Lock()
		c.profile = snap.Profile
		c.ledger.Replace(snap.Days)
		c.theme = snap.Theme
		c.firstRun = snap.FirstRun
		c.state = StateReady
		c.mu.Unlock()
	})
}

// Close flushes any pending snapshot and stops the flusher. Call it
// after the last mutation; it blocks until the final save lands.
func (c *Controller) Close() {
	c.closeOnce.Do(func() { close(c.done) })
	c.wg.Wait()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Ready reports whether the initial load has resolved.
func (c *Controller) Ready() bool {
	return c.State() == StateReady
}

// FirstRun reports whether the store held no profile at load time.
func (c *Controller) FirstRun() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstRun
}

// Profile returns the current user profile.
func (c *Controller) Profile() model.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Theme returns the current theme preference.
func (c *Controller) Theme() model.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Record returns the ledger record for the day d falls on, or a zero
// record when the day was never logged.
func (c *Controller) Record(d time.Time) model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Get(model.DayKey(d))
}

// HasEntry reports whether the day d falls on was ever logged.
func (c *Controller) HasEntry(d time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.HasEntry(model.DayKey(d))
}

// IsEditable reports whether d is today and therefore mutable.
func (c *Controller) IsEditable(d time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.IsEditable(model.DayKey(d), model.DayKey(c.now()))
}

// Increment bumps a counted metric on the day d falls on.
func (c *Controller) Increment(d time.Time, m model.Metric) (model.Record, error) {
	return c.mutate(func(todayKey string) (model.Record, error) {
		return c.ledger.Increment(model.DayKey(d), todayKey, m)
	})
}

// Decrement lowers a counted metric on the day d falls on.
func (c *Controller) Decrement(d time.Time, m model.Metric) (model.Record, error) {
	return c.mutate(func(todayKey string) (model.Record, error) {
		return c.ledger.Decrement(model.DayKey(d), todayKey, m)
	})
}

// Set stores a clamped value for a counted metric on d.
func (c *Controller) Set(d time.Time, m model.Metric, value int) (model.Record, error) {
	return c.mutate(func(todayKey string) (model.Record, error) {
		return c.ledger.Set(model.DayKey(d), todayKey, m, value)
	})
}

// ToggleCleanFood flips the clean-food flag on d.
func (c *Controller) ToggleCleanFood(d time.Time) (model.Record, error) {
	return c.mutate(func(todayKey string) (model.Record, error) {
		return c.ledger.ToggleCleanFood(model.DayKey(d), todayKey)
	})
}

// SetProfile overwrites the user profile.
func (c *Controller) SetProfile(p model.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return ErrNotReady
	}
	c.profile = p
	c.firstRun = false
	c.enqueueLocked()
	return nil
}

// SetTheme stores a theme preference; unknown names are ignored.
func (c *Controller) SetTheme(t model.Theme) error {
	if !t.Valid() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return ErrNotReady
	}
	c.theme = t
	c.enqueueLocked()
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (c *Controller) ToggleTheme() (model.Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return c.theme, ErrNotReady
	}
	c.theme = c.theme.Toggle()
	c.enqueueLocked()
	return c.theme, nil
}

func (c *Controller) mutate(fn func(todayKey string) (model.Record, error)) (model.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return model.Record{}, ErrNotReady
	}
	rec, err := fn(model.DayKey(c.now()))
	if err != nil {
		return model.Record{}, err
	}
	c.enqueueLocked()
	return rec, nil
}

// enqueueLocked snapshots the whole current state into the pending
// slot, replacing any unflushed predecessor. Caller holds c.mu.
func (c *Controller) enqueueLocked() {
	snap := model.Snapshot{
		Profile: c.profile,
		Days:    c.ledger.Snapshot(),
		Theme:   c.theme,
	}
	c.pending = &snap
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Controller) flushLoop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.done:
			c.flushPending()
			return
		case <-c.wake:
			c.flushPending()
		}
	}
}

// flushPending persists the newest pending snapshot, if any. Saves are
// idempotent full overwrites, so a failed one is simply dropped; the
// next mutation re-enqueues the then-current state.
func (c *Controller) flushPending() {
	c.mu.Lock()
	snap := c.pending
	c.pending = nil
	c.mu.Unlock()

	if snap == nil {
		return
	}
	if err := c.gw.Save(context.Background(), *snap); err != nil {
		c.logger.Printf("dropping failed save, next change retries: %v", err)
	}
}
