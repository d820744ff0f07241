// Package state tracks, per user, which multi-step conversation flow is
// active and what partial data has been collected so far.
package state

// Flow tags. FlowNone means no multi-step flow is active.
const (
	FlowNone                = ""
	FlowAwaitingCuisineName = "awaiting_cuisine_name"
	FlowSelectingCuisine    = "selecting_cuisine"
	FlowAddingIngredients   = "adding_ingredients"
)

// Record is one user's conversation state: the active flow tag plus the
// context fields collected so far. Cuisine and Added are meaningful only for
// the flows that use them.
type Record struct {
	Flow    string `json:"flow"`
	Cuisine string `json:"cuisine"`
	Added   int    `json:"added"`
}

// Store maps user identifiers to conversation state. Implementations must be
// safe for concurrent use across users; a user's Set must be visible to the
// next Get for that user.
type Store interface {
	// Get returns the user's record and whether one is present.
	Get(userID string) (Record, bool, error)

	// Set replaces the user's record.
	Set(userID string, r Record) error

	// Clear removes the user's record. Clearing an absent record is a no-op.
	Clear(userID string) error

	// Close releases any resources held by the store.
	Close() error
}
