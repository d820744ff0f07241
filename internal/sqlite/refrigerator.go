// Refrigerator store operations: creation, item insert/list/delete, and the
// cached profile record.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/pkg/types"
)

// HasRefrigerator implements Store.
func (b *Backend) HasRefrigerator(userID string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return exists(paths.RefrigeratorPath(b.dataDir, userID))
}

// CreateRefrigerator implements Store. Returns false without touching
// anything when the store already exists.
func (b *Backend) CreateRefrigerator(userID string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if _, err := b.ensureUserDir(userID); err != nil {
		return false, err
	}

	path := paths.RefrigeratorPath(b.dataDir, userID)
	ok, err := exists(path)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}

	db, err := open(path)
	if err != nil {
		return false, err
	}
	defer db.Close()

	if _, err := db.Exec(createItems); err != nil {
		return false, fmt.Errorf("create items table: %w", err)
	}
	if _, err := db.Exec(createUserInfo); err != nil {
		return false, fmt.Errorf("create user_info table: %w", err)
	}

	b.log.Info("created refrigerator", zap.String("user", userID))
	return true, nil
}

// ListItems implements Store. Newest items first; an absent refrigerator
// yields an empty list.
func (b *Backend) ListItems(userID string) ([]types.Item, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.RefrigeratorPath(b.dataDir, userID)
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
		`SELECT id, item_name, quantity, unit, expiry_date, added_at
		 FROM refrigerator_items
		 ORDER BY added_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var (
			item    types.Item
			expiry  sql.NullString
			addedAt string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &expiry, &addedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Expiry = expiry.String
		item.AddedAt = parseTime(addedAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddItem implements Store. Applies quantity/unit defaults and returns false
// when the user has no refrigerator.
func (b *Backend) AddItem(userID, name string, quantity int, unit, expiry string) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if quantity == 0 {
		quantity = types.DefaultQuantity
	}
	if unit == "" {
		unit = types.DefaultUnit
	}

	path := paths.RefrigeratorPath(b.dataDir, userID)
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

	var expiryVal any
	if expiry != "" {
		expiryVal = expiry
	}

	_, err = db.Exec(
		`INSERT INTO refrigerator_items (item_name, quantity, unit, expiry_date, added_at)
		 VALUES (?, ?, ?, ?, ?)`,
		name, quantity, unit, expiryVal, now(),
	)
	if err != nil {
		return false, fmt.Errorf("insert item: %w", err)
	}
	return true, nil
}

// RemoveItem implements Store. Returns false when the ID is unknown or the
// user has no refrigerator.
func (b *Backend) RemoveItem(userID string, itemID int64) (bool, error) {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.RefrigeratorPath(b.dataDir, userID)
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

	res, err := db.Exec("DELETE FROM refrigerator_items WHERE id = ?", itemID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return affected > 0, nil
}

// SaveProfile implements Store. Upserts the cached profile; no-op when the
// user has no refrigerator.
func (b *Backend) SaveProfile(userID string, profile types.Profile) error {
	l := b.userLock(userID)
	l.Lock()
	defer l.Unlock()

	path := paths.RefrigeratorPath(b.dataDir, userID)
	ok, err := exists(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT OR REPLACE INTO user_info (user_id, username, first_name, last_name, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, profile.Username, profile.FirstName, profile.LastName, now(),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
