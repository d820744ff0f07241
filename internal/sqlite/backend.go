// Package sqlite implements the per-user SQLite storage engine for the
// Icebox assistant. Each user owns a directory of small database files: one
// refrigerator store, one cuisine index, and one store per created cuisine.
// See docs/ARCHITECTURE.md § Storage Layout.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface on top of per-user SQLite files.
// Store files are opened per operation; a per-user mutex serializes all
// operations within one user's partition so check-then-act sequences (the
// cuisine uniqueness check before insert) are atomic. Distinct users never
// contend.
type Backend struct {
	dataDir string
	log     *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Backend rooted at dataDir. The directory is created lazily
// by the first user-space operation. A nil logger disables logging.
func New(dataDir string, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{
		dataDir: dataDir,
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing operations for one user.
func (b *Backend) userLock(userID string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		b.locks[userID] = l
	}
	return l
}

// EnsureUserSpace implements Store. Creates the user's directory if absent
// and reports whether this call created it.
func (b *Backend) EnsureUserSpace(userID string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return b.ensureUserDir(userID)
}

// ensureUserDir creates the user directory if needed. The caller must hold
// the user's lock.
func (b *Backend) ensureUserDir(userID string) (bool, error) {
	dir := paths.UserDir(b.dataDir, userID)
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat user dir: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create user dir: %w", err)
	}
	b.log.Info("created user space", zap.String("user", userID))
	return true, nil
}

// open opens one store file. The modernc driver creates the file on first
// statement, so existence checks must run before calling open.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// exists reports whether a store file is present on disk.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// now returns the current time formatted for storage.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime decodes a stored timestamp. Unparseable values decode to the
// zero time rather than failing the whole read.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
