package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iceboxlab/icebox/internal/state"
)

func TestStateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   State
	}{
		{name: "awaiting cuisine name", in: AwaitingCuisineName{}},
		{name: "selecting cuisine", in: SelectingCuisine{}},
		{name: "adding ingredients", in: AddingIngredients{Cuisine: "Lasagne", Added: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeState(encodeState(tt.in), true)
			assert.True(t, ok)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestDecodeStateAbsent(t *testing.T) {
	got, ok := decodeState(state.Record{}, false)
	assert.True(t, ok)
	assert.Equal(t, Idle{}, got)
}

func TestDecodeStateLostContext(t *testing.T) {
	tests := []struct {
		name   string
		record state.Record
	}{
		{
			name:   "ingredient flow without a cuisine",
			record: state.Record{Flow: state.FlowAddingIngredients},
		},
		{
			name:   "unknown flow tag",
			record: state.Record{Flow: "time_travel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeState(tt.record, true)
			assert.False(t, ok, "must be reported as lost context")
			assert.Equal(t, Idle{}, got)
		})
	}
}
