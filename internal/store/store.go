// Package store provides the SQLite-backed durable key-value gateway
// for profile, ledger, and theme state.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/habit/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists the three state documents as JSON values in a single
// key-value table. Load and Save are safe to call from any goroutine.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens or creates the state database at the given path. A nil
// logger defaults to stderr.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "[store] ", log.LstdFlags)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads all three documents. Missing or unparseable values fall
// back to documented defaults rather than failing: a fresh install or
// a corrupted store resets visible history, it never crashes the app.
// The three keys degrade independently. FirstRun is set when no
// profile had ever been stored. defaultTheme fills in when no valid
// theme is stored.
func (s *Store) Load(ctx context.Context, defaultTheme model.Theme) model.Snapshot {
	now := time.Now()
	snap := model.Snapshot{
		Profile: model.DefaultProfile(now),
		Days:    make(map[string]model.Record),
		Theme:   defaultTheme,
	}

	raw, ok := s.getValue(ctx, keyUserData)
	if !ok {
		snap.FirstRun = true
	} else {
		var p model.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.logger.Printf("corrupt %s, using defaults: %v", keyUserData, err)
		} else {
			snap.Profile = p
		}
	}

	if raw, ok := s.getValue(ctx, keyProgressData); ok {
		var days map[string]model.Record
		if err := json.Unmarshal([]byte(raw), &days); err != nil {
			s.logger.Printf("corrupt %s, starting with empty ledger: %v", keyProgressData, err)
		} else if days != nil {
			snap.Days = days
		}
	}

	if raw, ok := s.getValue(ctx, keyTheme); ok {
		var name string
		if err := json.Unmarshal([]byte(raw), &name); err != nil {
			s.logger.Printf("corrupt %s, using %s: %v", keyTheme, defaultTheme, err)
		} else {
			snap.Theme = model.ParseTheme(name, defaultTheme)
		}
	}

	return snap
}

// Save writes all three documents. Each key is upserted independently;
// persistence is not transactional across them. The first error is
// returned after attempting the remaining keys.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	var firstErr error

	put := func(key string, v any) {
		data, err := json.Marshal(v)
		if err == nil {
			err = s.setValue(ctx, key, string(data))
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("saving %s: %w", key, err)
		}
	}

	put(keyUserData, snap.Profile)
	put(keyProgressData, snap.Days)
	put(keyTheme, string(snap.Theme))

	return firstErr
}

func (s *Store) getValue(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Printf("reading %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *Store) setValue(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO app_state (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, now)
	return err
}
