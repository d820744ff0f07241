package types

import "time"

// Default field values applied on insert when the caller leaves them unset.
const (
	DefaultQuantity = 1
	DefaultUnit     = "pieces"
	DefaultCategory = "other"
)

// Item is one refrigerator entry. Items are immutable after insert; the only
// mutation is delete-by-ID.
type Item struct {
	ID       int64     // Assigned by the store on insert, unique per refrigerator.
	Name     string    // Required, non-empty.
	Quantity int       // Defaults to DefaultQuantity.
	Unit     string    // Defaults to DefaultUnit.
	Expiry   string    // Optional expiry date; empty means none.
	AddedAt  time.Time // Timestamp of insert.
}
