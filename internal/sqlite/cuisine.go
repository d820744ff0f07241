// Cuisine index and per-cuisine store operations. The index is the
// uniqueness authority for raw names; the physical storage key is checked
// first, so two names that normalize to the same key collide before the
// index is ever consulted.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/pkg/types"
)

// HasCuisineIndex implements Store.
func (b *Backend) HasCuisineIndex(userID string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return exists(paths.CuisineIndexPath(b.dataDir, userID))
}

// EnsureCuisineIndex implements Store. Idempotent.
func (b *Backend) EnsureCuisineIndex(userID string) error {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return b.ensureCuisineIndex(userID)
}

// ensureCuisineIndex creates the index store if needed. The caller must hold
// the user's lock.
func (b *Backend) ensureCuisineIndex(userID string) error {
	if _, err := b.ensureUserDir(userID); err != nil {
		return err
	}

	path := paths.CuisineIndexPath(b.dataDir, userID)
	ok, err := exists(path)
	if err != nil {
		return err
	}

	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createCuisineIndex); err != nil {
		return fmt.Errorf("create cuisine index: %w", err)
	}
	if !ok {
		b.log.Info("created cuisine index", zap.String("user", userID))
	}
	return nil
}

// ListCuisines implements Store. Most recently created first; an absent
// index yields an empty list.
func (b *Backend) ListCuisines(userID string) ([]types.Cuisine, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.CuisineIndexPath(b.dataDir, userID)
	ok, err := exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT cuisine_id, cuisine_name, cuisine_filename, description, created_at
		 FROM cuisines_index
		 ORDER BY created_at DESC, cuisine_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list cuisines: %w", err)
	}
	defer rows.Close()

	var cuisines []types.Cuisine
	for rows.Next() {
		var (
			c         types.Cuisine
			desc      sql.NullString
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Filename, &desc, &createdAt); err != nil {
			return nil, fmt.Errorf("scan cuisine: %w", err)
		}
		c.Description = desc.String
		c.CreatedAt = parseTime(createdAt)
		cuisines = append(cuisines, c)
	}
	return cuisines, rows.Err()
}

// CuisineExists implements Store. Presence of the derived storage file is
// the authoritative collision check.
func (b *Backend) CuisineExists(userID, name string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return exists(paths.CuisinePath(b.dataDir, userID, name))
}

// CreateCuisine implements Store. The uniqueness check and the insert run
// under the user's lock, so two near-simultaneous creations for colliding
// names cannot both succeed. A failure while building the per-cuisine store
// removes the index row again; creation is all-or-nothing.
func (b *Backend) CreateCuisine(userID, name, description string) (int64, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := b.ensureCuisineIndex(userID); err != nil {
		return 0, err
	}

	storePath := paths.CuisinePath(b.dataDir, userID, name)
	ok, err := exists(storePath)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, types.ErrCuisineExists
	}

	cuisineID, err := b.insertIndexEntry(userID, name, description)
	if err != nil {
		return 0, err
	}

	if err := createCuisineStore(storePath, name, description, cuisineID); err != nil {
		// Roll the index entry back so the failed creation leaves nothing.
		_ = os.Remove(storePath)
		b.removeIndexEntry(userID, cuisineID)
		return 0, err
	}

	b.log.Info("created cuisine",
		zap.String("user", userID),
		zap.String("cuisine", name),
		zap.Int64("id", cuisineID),
	)
	return cuisineID, nil
}

// insertIndexEntry adds a cuisine to the index. A raw-name uniqueness
// violation maps to ErrCuisineExists.
func (b *Backend) insertIndexEntry(userID, name, description string) (int64, error) {
	db, err := open(paths.CuisineIndexPath(b.dataDir, userID))
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var descVal any
	if description != "" {
		descVal = description
	}

	res, err := db.Exec(
		`INSERT INTO cuisines_index (cuisine_name, cuisine_filename, description, created_at)
		 VALUES (?, ?, ?, ?)`,
		name, paths.CuisineFilename(name), descVal, now(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, types.ErrCuisineExists
		}
		return 0, fmt.Errorf("insert cuisine index entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert cuisine index entry: %w", err)
	}
	return id, nil
}

// removeIndexEntry deletes an index row during creation rollback. Best
// effort; the error is logged, not propagated, because the caller is already
// failing with the original error.
func (b *Backend) removeIndexEntry(userID string, cuisineID int64) {
	db, err := open(paths.CuisineIndexPath(b.dataDir, userID))
	if err != nil {
		b.log.Error("rollback cuisine index entry", zap.String("user", userID), zap.Error(err))
		return
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM cuisines_index WHERE cuisine_id = ?", cuisineID); err != nil {
		b.log.Error("rollback cuisine index entry", zap.String("user", userID), zap.Error(err))
	}
}

// createCuisineStore builds an empty per-cuisine store with its info record.
func createCuisineStore(path, name, description string, cuisineID int64) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createIngredients); err != nil {
		return fmt.Errorf("create ingredients table: %w", err)
	}
	if _, err := db.Exec(createCuisineInfo); err != nil {
		return fmt.Errorf("create cuisine_info table: %w", err)
	}

	var descVal any
	if description != "" {
		descVal = description
	}
	_, err = db.Exec(
		`INSERT INTO cuisine_info (id, cuisine_name, description, cuisine_id, created_at)
		 VALUES (1, ?, ?, ?, ?)`,
		name, descVal, cuisineID, now(),
	)
	if err != nil {
		return fmt.Errorf("insert cuisine info: %w", err)
	}
	return nil
}

// AddIngredient implements Store. Applies unit/category defaults and returns
// false when the cuisine store is absent.
func (b *Backend) AddIngredient(userID, cuisineName string, ing types.Ingredient) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if ing.Unit == "" {
		ing.Unit = types.DefaultUnit
	}
	if ing.Category == "" {
		ing.Category = types.DefaultCategory
	}

	path := paths.CuisinePath(b.dataDir, userID, cuisineName)
	ok, err := exists(path)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	db, err := open(path)
	if err != nil {
		return false, err
	}
	defer db.Close()

	var notesVal any
	if ing.Notes != "" {
		notesVal = ing.Notes
	}

	_, err = db.Exec(
		`INSERT INTO ingredients (ingredient_name, amount, unit, notes, category, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ing.Name, ing.Amount, ing.Unit, notesVal, ing.Category, now(),
	)
	if err != nil {
		return false, fmt.Errorf("insert ingredient: %w", err)
	}
	return true, nil
}

// ListIngredients implements Store. Oldest first; an absent cuisine store
// yields an empty list.
func (b *Backend) ListIngredients(userID, cuisineName string) ([]types.Ingredient, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.CuisinePath(b.dataDir, userID, cuisineName)
	ok, err := exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, ingredient_name, amount, unit, notes, category, added_at
		 FROM ingredients
		 ORDER BY added_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []types.Ingredient
	for rows.Next() {
		var (
			ing     types.Ingredient
			notes   sql.NullString
			addedAt string
		)
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Amount, &ing.Unit, &notes, &ing.Category, &addedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ing.Notes = notes.String
		ing.AddedAt = parseTime(addedAt)
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// GetCuisineInfo implements Store. Returns nil when the cuisine store is
// absent.
func (b *Backend) GetCuisineInfo(userID, cuisineName string) (*types.CuisineInfo, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.CuisinePath(b.dataDir, userID, cuisineName)
	ok, err := exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var (
		info      types.CuisineInfo
		desc      sql.NullString
		createdAt string
	)
	err = db.QueryRow(
		`SELECT cuisine_name, description, cuisine_id, created_at
		 FROM cuisine_info WHERE id = 1`,
	).Scan(&info.Name, &desc, &info.CuisineID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cuisine info: %w", err)
	}
	info.Description = desc.String
	info.CreatedAt = parseTime(createdAt)
	return &info, nil
}
