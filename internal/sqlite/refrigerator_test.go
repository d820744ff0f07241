package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/pkg/types"
)

// setupBackend creates a Backend rooted at a fresh temp dir.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	return New(t.TempDir(), nil)
}

func TestEnsureUserSpace(t *testing.T) {
	b := setupBackend(t)

	created, err := b.EnsureUserSpace("42")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = b.EnsureUserSpace("42")
	require.NoError(t, err)
	assert.False(t, created, "second call must report existing space")
}

func TestCreateRefrigerator(t *testing.T) {
	b := setupBackend(t)

	has, err := b.HasRefrigerator("42")
	require.NoError(t, err)
	assert.False(t, has)

	ok, err := b.CreateRefrigerator("42")
	require.NoError(t, err)
	assert.True(t, ok)

	has, err = b.HasRefrigerator("42")
	require.NoError(t, err)
	assert.True(t, has)

	// Repeated creation is a no-op that reports existing data.
	ok, err = b.CreateRefrigerator("42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateRefrigeratorIdempotentContents(t *testing.T) {
	b := setupBackend(t)

	_, err := b.CreateRefrigerator("42")
	require.NoError(t, err)

	ok, err := b.AddItem("42", "Milk", 2, "liter", "")
	require.NoError(t, err)
	require.True(t, ok)

	// A second setup call must leave the listable contents unchanged.
	_, err = b.CreateRefrigerator("42")
	require.NoError(t, err)

	items, err := b.ListItems("42")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestAddItemRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		itemName     string
		quantity     int
		unit         string
		wantQuantity int
		wantUnit     string
	}{
		{
			name:         "explicit quantity and unit",
			itemName:     "Milk",
			quantity:     2,
			unit:         "liter",
			wantQuantity: 2,
			wantUnit:     "liter",
		},
		{
			name:         "defaults applied when omitted",
			itemName:     "Eggs",
			wantQuantity: 1,
			wantUnit:     "pieces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			_, err := b.CreateRefrigerator("42")
			require.NoError(t, err)

			ok, err := b.AddItem("42", tt.itemName, tt.quantity, tt.unit, "")
			require.NoError(t, err)
			require.True(t, ok)

			items, err := b.ListItems("42")
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.itemName, items[0].Name)
			assert.Equal(t, tt.wantQuantity, items[0].Quantity)
			assert.Equal(t, tt.wantUnit, items[0].Unit)
			assert.Empty(t, items[0].Expiry)
			assert.False(t, items[0].AddedAt.IsZero())
		})
	}
}

func TestAddItemWithoutRefrigerator(t *testing.T) {
	b := setupBackend(t)

	ok, err := b.AddItem("42", "Milk", 1, "liter", "")
	require.NoError(t, err)
	assert.False(t, ok, "absent refrigerator is a signal, not an error")
}

func TestListItemsNewestFirst(t *testing.T) {
	b := setupBackend(t)
	_, err := b.CreateRefrigerator("42")
	require.NoError(t, err)

	for _, name := range []string{"Milk", "Eggs", "Bread"} {
		ok, err := b.AddItem("42", name, 0, "", "")
		require.NoError(t, err)
		require.True(t, ok)
	}

	items, err := b.ListItems("42")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Bread", items[0].Name)
	assert.Equal(t, "Eggs", items[1].Name)
	assert.Equal(t, "Milk", items[2].Name)
}

func TestListItemsWithoutRefrigerator(t *testing.T) {
	b := setupBackend(t)

	items, err := b.ListItems("42")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveItem(t *testing.T) {
	b := setupBackend(t)
	_, err := b.CreateRefrigerator("42")
	require.NoError(t, err)

	for _, name := range []string{"Milk", "Eggs"} {
		_, err := b.AddItem("42", name, 0, "", "")
		require.NoError(t, err)
	}
	items, err := b.ListItems("42")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Unknown ID leaves the list unchanged.
	ok, err := b.RemoveItem("42", 9999)
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := b.ListItems("42")
	require.NoError(t, err)
	assert.Equal(t, items, after)

	// Known ID removes exactly that item.
	ok, err = b.RemoveItem("42", items[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	after, err = b.ListItems("42")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, items[1].ID, after[0].ID)
}

func TestRemoveItemWithoutRefrigerator(t *testing.T) {
	b := setupBackend(t)

	ok, err := b.RemoveItem("42", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveProfile(t *testing.T) {
	b := setupBackend(t)

	// No refrigerator: silently skipped.
	err := b.SaveProfile("42", types.Profile{FirstName: "Ana"})
	require.NoError(t, err)

	_, err = b.CreateRefrigerator("42")
	require.NoError(t, err)

	require.NoError(t, b.SaveProfile("42", types.Profile{Username: "ana", FirstName: "Ana", LastName: "K"}))
	// Upsert: saving again replaces, never duplicates.
	require.NoError(t, b.SaveProfile("42", types.Profile{Username: "ana", FirstName: "Anna", LastName: "K"}))

	db, err := sql.Open("sqlite", paths.RefrigeratorPath(b.dataDir, "42"))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM user_info").Scan(&count))
	assert.Equal(t, 1, count)

	var first string
	require.NoError(t, db.QueryRow("SELECT first_name FROM user_info WHERE user_id = ?", "42").Scan(&first))
	assert.Equal(t, "Anna", first)
}

func TestUserPartitionsIsolated(t *testing.T) {
	b := setupBackend(t)

	_, err := b.CreateRefrigerator("alice")
	require.NoError(t, err)
	ok, err := b.AddItem("alice", "Milk", 0, "", "")
	require.NoError(t, err)
	require.True(t, ok)

	has, err := b.HasRefrigerator("bob")
	require.NoError(t, err)
	assert.False(t, has)

	items, err := b.ListItems("bob")
	require.NoError(t, err)
	assert.Empty(t, items)
}
