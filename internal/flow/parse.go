package flow

import (
	"strconv"
	"strings"

	"github.com/iceboxlab/icebox/pkg/types"
)

// parseIngredientLine splits an ingredient entry into its parts. The line
// format is "name amount unit [category] [notes...]"; fewer than three
// tokens is a format error. Notes are the remaining tokens joined verbatim.
func parseIngredientLine(text string) (types.Ingredient, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 3 {
		return types.Ingredient{}, false
	}

	ing := types.Ingredient{
		Name:     tokens[0],
		Amount:   tokens[1],
		Unit:     tokens[2],
		Category: types.DefaultCategory,
	}
	if len(tokens) >= 4 {
		ing.Category = tokens[3]
	}
	if len(tokens) >= 5 {
		ing.Notes = strings.Join(tokens[4:], " ")
	}
	return ing, true
}

// parseItemArgs interprets the add-item command arguments: name, optional
// quantity, optional unit. A non-integer second argument is reinterpreted as
// the unit; an explicit third argument overrides the unit either way.
func parseItemArgs(args []string) (name string, quantity int, unit string) {
	name = args[0]
	quantity = types.DefaultQuantity
	unit = types.DefaultUnit

	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			quantity = n
		} else {
			unit = args[1]
		}
	}
	if len(args) >= 3 {
		unit = args[2]
	}
	return name, quantity, unit
}
