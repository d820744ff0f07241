package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name lowercased", input: "Lasagne", want: "lasagne"},
		{name: "spaces become underscores", input: "Beef Stew", want: "beef_stew"},
		{name: "trailing whitespace trimmed", input: "stew ", want: "stew"},
		{name: "case and trailing space collide", input: "Stew ", want: "stew"},
		{name: "special characters dropped", input: "Mac & Cheese!", want: "mac__cheese"},
		{name: "hyphens and underscores kept", input: "stir-fry_v2", want: "stir-fry_v2"},
		{name: "digits kept", input: "Recipe 42", want: "recipe_42"},
		{name: "interior spaces preserved as underscores", input: "a  b", want: "a__b"},
		{name: "unicode letters kept", input: "Crème Brûlée", want: "crème_brûlée"},
		{name: "empty name", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StorageKey(tt.input))
		})
	}
}

func TestCuisineFilename(t *testing.T) {
	assert.Equal(t, "beef_stew.db", CuisineFilename("Beef Stew"))
}

func TestLayout(t *testing.T) {
	dataDir := filepath.Join("/", "data")

	assert.Equal(t, filepath.Join("/", "data", "user_42"), UserDir(dataDir, "42"))
	assert.Equal(t, filepath.Join("/", "data", "user_42", "refrigerator.db"), RefrigeratorPath(dataDir, "42"))
	assert.Equal(t, filepath.Join("/", "data", "user_42", "cuisines_index.db"), CuisineIndexPath(dataDir, "42"))
	assert.Equal(t, filepath.Join("/", "data", "user_42", "beef_stew.db"), CuisinePath(dataDir, "42", "Beef Stew"))
	assert.Equal(t, filepath.Join("/", "data", "sessions.db"), SessionsPath(dataDir))
}
