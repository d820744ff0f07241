package types

import "time"

// Cuisine name length bounds, enforced before creation.
const (
	CuisineNameMinLen = 2
	CuisineNameMaxLen = 50
)

// ValidCuisineName reports whether a proposed cuisine name is within the
// accepted length bounds.
func ValidCuisineName(name string) bool {
	return len(name) >= CuisineNameMinLen && len(name) <= CuisineNameMaxLen
}

// Cuisine is one entry of a user's cuisine index.
type Cuisine struct {
	ID          int64     // Assigned by the index on insert.
	Name        string    // Unique within the collection, case-sensitive as typed.
	Filename    string    // Storage file name derived from Name.
	Description string    // Optional; empty means none.
	CreatedAt   time.Time // Timestamp of creation.
}

// CuisineInfo is the single info record duplicated inside each per-cuisine
// store, so a cuisine can be described without consulting the index.
type CuisineInfo struct {
	Name        string
	Description string
	CuisineID   int64
	CreatedAt   time.Time
}

// Ingredient is one entry of a cuisine's ingredient list, scaled to one
// serving. Amount is free-form text ("2", "1/2"), not strictly numeric.
type Ingredient struct {
	ID       int64
	Name     string
	Amount   string
	Unit     string // Defaults to DefaultUnit.
	Notes    string // Optional free text; empty means none.
	Category string // Defaults to DefaultCategory.
	AddedAt  time.Time
}
