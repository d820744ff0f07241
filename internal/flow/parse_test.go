package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceboxlab/icebox/pkg/types"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Ingredient
		ok   bool
	}{
		{
			name: "three tokens",
			text: "Tomato 2 pieces",
			want: types.Ingredient{Name: "Tomato", Amount: "2", Unit: "pieces", Category: "other"},
			ok:   true,
		},
		{
			name: "with category",
			text: "Tomato 2 pieces vegetables",
			want: types.Ingredient{Name: "Tomato", Amount: "2", Unit: "pieces", Category: "vegetables"},
			ok:   true,
		},
		{
			name: "with notes",
			text: "Basil 1/2 bunch herbs fresh only",
			want: types.Ingredient{Name: "Basil", Amount: "1/2", Unit: "bunch", Category: "herbs", Notes: "fresh only"},
			ok:   true,
		},
		{
			name: "fractional amount stays text",
			text: "Flour 1/2 cup",
			want: types.Ingredient{Name: "Flour", Amount: "1/2", Unit: "cup", Category: "other"},
			ok:   true,
		},
		{
			name: "extra whitespace tolerated",
			text: "  Tomato   2   pieces  ",
			want: types.Ingredient{Name: "Tomato", Amount: "2", Unit: "pieces", Category: "other"},
			ok:   true,
		},
		{name: "two tokens is a format error", text: "Tomato 2", ok: false},
		{name: "one token is a format error", text: "Tomato", ok: false},
		{name: "empty line is a format error", text: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseIngredientLine(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseItemArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantName     string
		wantQuantity int
		wantUnit     string
	}{
		{
			name:         "name only takes all defaults",
			args:         []string{"Eggs"},
			wantName:     "Eggs",
			wantQuantity: 1,
			wantUnit:     "pieces",
		},
		{
			name:         "quantity and unit",
			args:         []string{"Milk", "2", "liter"},
			wantName:     "Milk",
			wantQuantity: 2,
			wantUnit:     "liter",
		},
		{
			name:         "non-numeric second arg becomes the unit",
			args:         []string{"Bread", "loaves"},
			wantName:     "Bread",
			wantQuantity: 1,
			wantUnit:     "loaves",
		},
		{
			name:         "numeric second arg is the quantity",
			args:         []string{"Apples", "5"},
			wantName:     "Apples",
			wantQuantity: 5,
			wantUnit:     "pieces",
		},
		{
			name:         "explicit third arg overrides unit",
			args:         []string{"Apples", "box", "crates"},
			wantName:     "Apples",
			wantQuantity: 1,
			wantUnit:     "crates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, quantity, unit := parseItemArgs(tt.args)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantQuantity, quantity)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}
