// Per-user storage layout: one directory per user under the data dir, one
// SQLite file per store inside it.
package paths

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Store file names inside a user directory.
const (
	RefrigeratorFile = "refrigerator.db"
	CuisineIndexFile = "cuisines_index.db"
	SessionsFile     = "sessions.db"
)

// UserDir returns the directory holding all of one user's stores.
func UserDir(dataDir, userID string) string {
	return filepath.Join(dataDir, "user_"+userID)
}

// RefrigeratorPath returns the path of the user's refrigerator store.
func RefrigeratorPath(dataDir, userID string) string {
	return filepath.Join(UserDir(dataDir, userID), RefrigeratorFile)
}

// CuisineIndexPath returns the path of the user's cuisine index store.
func CuisineIndexPath(dataDir, userID string) string {
	return filepath.Join(UserDir(dataDir, userID), CuisineIndexFile)
}

// CuisinePath returns the path of the store derived from a cuisine name.
func CuisinePath(dataDir, userID, cuisineName string) string {
	return filepath.Join(UserDir(dataDir, userID), CuisineFilename(cuisineName))
}

// SessionsPath returns the path of the durable conversation state store.
// Sessions are not partitioned per user; the store keys rows by user ID.
func SessionsPath(dataDir string) string {
	return filepath.Join(dataDir, SessionsFile)
}

// CuisineFilename returns the storage file name derived from a cuisine name.
func CuisineFilename(cuisineName string) string {
	return StorageKey(cuisineName) + ".db"
}

// StorageKey normalizes a cuisine name into a deterministic, filesystem-safe
// identifier: characters other than letters, digits, spaces, hyphens and
// underscores are dropped, trailing whitespace is trimmed, spaces become
// underscores, and the result is lowercased. Names that differ only in case
// or spacing therefore collide on the same key.
func StorageKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	key := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	key = strings.ReplaceAll(key, " ", "_")
	return strings.ToLower(key)
}
