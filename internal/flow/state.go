// Conversation states as an explicit tagged variant. Each variant carries
// only the context its flow needs; the state store persists a flattened
// record and decode failures surface as lost context, never as a crash.
package flow

import "github.com/iceboxlab/icebox/internal/state"

// State is one user's position in a multi-step conversation.
type State interface {
	isState()
}

// Idle means no multi-step flow is active. Free text gets the help message.
type Idle struct{}

// AwaitingCuisineName is entered by the cuisine setup command; the next text
// message is taken as the name of a cuisine to create.
type AwaitingCuisineName struct{}

// SelectingCuisine is entered by the add-ingredient command; the next text
// message picks which existing cuisine to populate.
type SelectingCuisine struct{}

// AddingIngredients is the ingredient entry loop for one cuisine. Added
// counts the ingredients stored during this session.
type AddingIngredients struct {
	Cuisine string
	Added   int
}

func (Idle) isState()                {}
func (AwaitingCuisineName) isState() {}
func (SelectingCuisine) isState()    {}
func (AddingIngredients) isState()   {}

// encodeState flattens a State into a storable record. Idle has no record;
// callers clear the store instead.
func encodeState(s State) state.Record {
	switch v := s.(type) {
	case AwaitingCuisineName:
		return state.Record{Flow: state.FlowAwaitingCuisineName}
	case SelectingCuisine:
		return state.Record{Flow: state.FlowSelectingCuisine}
	case AddingIngredients:
		return state.Record{Flow: state.FlowAddingIngredients, Cuisine: v.Cuisine, Added: v.Added}
	default:
		return state.Record{Flow: state.FlowNone}
	}
}

// decodeState rebuilds a State from a stored record. The second result is
// false when the record references a flow whose context is missing or the
// tag is unknown; the caller resets the user to Idle.
func decodeState(r state.Record, present bool) (State, bool) {
	if !present {
		return Idle{}, true
	}
	switch r.Flow {
	case state.FlowNone:
		return Idle{}, true
	case state.FlowAwaitingCuisineName:
		return AwaitingCuisineName{}, true
	case state.FlowSelectingCuisine:
		return SelectingCuisine{}, true
	case state.FlowAddingIngredients:
		if r.Cuisine == "" {
			return Idle{}, false
		}
		return AddingIngredients{Cuisine: r.Cuisine, Added: r.Added}, true
	default:
		return Idle{}, false
	}
}
