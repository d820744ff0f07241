package types

import "errors"

// Store errors. Precondition-missing conditions ("no refrigerator yet") are
// reported as boolean or absent results, not errors; these sentinels cover
// the cases callers must branch on explicitly.
var (
	ErrCuisineExists = errors.New("cuisine already exists")
	ErrInvalidName   = errors.New("invalid name")
)

// Store is the per-user durable record store. Every operation is keyed by an
// opaque user identifier and touches only that user's partition. Operations
// for the same user are serialized by the implementation; a returned error
// means real storage I/O failure and is not retried.
type Store interface {
	// EnsureUserSpace creates the user's storage partition if absent.
	// Idempotent; reports whether the partition was created by this call.
	EnsureUserSpace(userID string) (created bool, err error)

	// HasRefrigerator reports whether the user's refrigerator store exists.
	// Absence is a normal state, not corruption.
	HasRefrigerator(userID string) (bool, error)

	// CreateRefrigerator creates the user's refrigerator store. Returns
	// false when one already exists; existing data is left untouched.
	CreateRefrigerator(userID string) (bool, error)

	// ListItems returns the refrigerator's items, newest first. An absent
	// refrigerator yields an empty list.
	ListItems(userID string) ([]Item, error)

	// AddItem inserts a refrigerator item. Zero quantity defaults to
	// DefaultQuantity, empty unit to DefaultUnit, empty expiry to none.
	// Returns false when the user has no refrigerator.
	AddItem(userID, name string, quantity int, unit, expiry string) (bool, error)

	// RemoveItem deletes the item with the given ID. Returns false when the
	// ID is unknown or the user has no refrigerator. Irreversible.
	RemoveItem(userID string, itemID int64) (bool, error)

	// SaveProfile upserts the cached profile record. No-op when the user
	// has no refrigerator.
	SaveProfile(userID string, profile Profile) error

	// HasCuisineIndex reports whether the user's cuisine index exists.
	HasCuisineIndex(userID string) (bool, error)

	// EnsureCuisineIndex creates the user's cuisine index if absent.
	// Idempotent.
	EnsureCuisineIndex(userID string) error

	// ListCuisines returns the user's cuisines, most recently created
	// first. An absent index yields an empty list.
	ListCuisines(userID string) ([]Cuisine, error)

	// CuisineExists reports whether a cuisine store derived from name is
	// present. The check runs on the normalized storage key, so names that
	// differ only in case or spacing collide.
	CuisineExists(userID, name string) (bool, error)

	// CreateCuisine inserts a cuisine into the index and creates its empty
	// store with the info record. Returns ErrCuisineExists when the derived
	// storage key is already taken; an index uniqueness violation rolls the
	// whole creation back.
	CreateCuisine(userID, name, description string) (cuisineID int64, err error)

	// AddIngredient appends an ingredient to the named cuisine. Empty unit
	// and category take their defaults. Returns false when the cuisine
	// store is absent.
	AddIngredient(userID, cuisineName string, ing Ingredient) (bool, error)

	// ListIngredients returns the cuisine's ingredients, oldest first. An
	// absent cuisine store yields an empty list.
	ListIngredients(userID, cuisineName string) ([]Ingredient, error)

	// GetCuisineInfo returns the cuisine's info record, or nil when the
	// cuisine store is absent.
	GetCuisineInfo(userID, cuisineName string) (*CuisineInfo, error)
}
