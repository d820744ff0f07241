// Durable conversation state. Optional backing for the state.Store
// interface, selected by config when flows must survive a process restart.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/internal/state"
)

// Compile-time interface check.
var _ state.Store = (*SessionStore)(nil)

// SessionStore persists conversation state in a single sessions database
// under the data dir, one row per user. Unlike the per-user stores, the
// connection is held open for the life of the store.
type SessionStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSessionStore opens (creating if needed) the sessions database under
// dataDir.
func NewSessionStore(dataDir string) (*SessionStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := open(paths.SessionsPath(dataDir))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createSessions); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}
	return &SessionStore{db: db}, nil
}

// Get implements state.Store.
func (s *SessionStore) Get(userID string) (state.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r state.Record
	err := s.db.QueryRow(
		"SELECT flow, cuisine, added FROM sessions WHERE user_id = ?", userID,
	).Scan(&r.Flow, &r.Cuisine, &r.Added)
	if err == sql.ErrNoRows {
		return state.Record{}, false, nil
	}
	if err != nil {
		return state.Record{}, false, fmt.Errorf("get session: %w", err)
	}
	return r, true, nil
}

// Set implements state.Store.
func (s *SessionStore) Set(userID string, r state.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions (user_id, flow, cuisine, added, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, r.Flow, r.Cuisine, r.Added, now(),
	)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear implements state.Store.
func (s *SessionStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM sessions WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close implements state.Store.
func (s *SessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}
