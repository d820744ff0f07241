// End-to-end conversation scenarios wiring the flow controller to real
// storage, the way the chat gateway does.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceboxlab/icebox/internal/flow"
	"github.com/iceboxlab/icebox/internal/sqlite"
	"github.com/iceboxlab/icebox/internal/state"
	"github.com/iceboxlab/icebox/pkg/types"
)

func TestFullKitchenSession(t *testing.T) {
	dataDir := t.TempDir()
	backend := sqlite.New(dataDir, nil)
	ctrl := flow.NewController(backend, state.NewMemory(), nil)

	ana := types.UserRef{ID: "ana-1", FirstName: "Ana", Username: "ana"}

	cmd := func(name string, args ...string) string {
		return ctrl.Handle(types.CommandEvent{User: ana, Command: name, Args: args})
	}
	say := func(text string) string {
		return ctrl.Handle(types.TextEvent{User: ana, Text: text})
	}

	// Set up the refrigerator and stock it.
	reply := cmd(types.CmdNewRefrigerator)
	require.Contains(t, reply, "refrigerator has been created")

	cmd(types.CmdAddItem, "Milk", "2", "liter")
	cmd(types.CmdAddItem, "Eggs")
	cmd(types.CmdAddItem, "Bread", "loaves")

	reply = cmd(types.CmdNewRefrigerator)
	assert.Contains(t, reply, "Milk: 2 liter")
	assert.Contains(t, reply, "Eggs: 1 pieces")
	assert.Contains(t, reply, "Bread: 1 loaves")
	assert.Contains(t, reply, "Total items: 3")

	// Create a cuisine and fill its ingredient list in one flow.
	reply = cmd(types.CmdNewCuisine)
	require.Contains(t, reply, "Type the name of a cuisine")

	reply = say("Beef Stew")
	require.Contains(t, reply, "'Beef Stew' has been created")

	say("Beef 500 grams meat")
	say("Carrot 2 pieces vegetables")
	reply = say("Thyme 1 sprig herbs dried works too")
	assert.Contains(t, reply, "this session: 3")

	reply = say("done")
	assert.Contains(t, reply, "Beef Stew")
	assert.Contains(t, reply, "this session: 3")

	// Come back later to add one more through selection.
	reply = cmd(types.CmdAddIngredient)
	require.Contains(t, reply, "Beef Stew")

	reply = say("Beef Stew")
	assert.Contains(t, reply, "Beef: 500 grams")

	say("Potato 3 pieces vegetables")
	say("done")

	ingredients, err := backend.ListIngredients(ana.ID, "Beef Stew")
	require.NoError(t, err)
	require.Len(t, ingredients, 4)
	assert.Equal(t, "Beef", ingredients[0].Name)
	assert.Equal(t, "Potato", ingredients[3].Name)
	assert.Equal(t, "dried works too", ingredients[2].Notes)
}

func TestUsersDoNotShareState(t *testing.T) {
	dataDir := t.TempDir()
	backend := sqlite.New(dataDir, nil)
	ctrl := flow.NewController(backend, state.NewMemory(), nil)

	ana := types.UserRef{ID: "ana-1", FirstName: "Ana"}
	bo := types.UserRef{ID: "bo-1", FirstName: "Bo"}

	// Ana enters the cuisine naming flow; Bo stays idle.
	ctrl.Handle(types.CommandEvent{User: ana, Command: types.CmdNewCuisine})

	reply := ctrl.Handle(types.TextEvent{User: bo, Text: "Lasagne"})
	assert.Contains(t, reply, "Hi Bo", "Bo's text must get help, not create a cuisine")

	reply = ctrl.Handle(types.TextEvent{User: ana, Text: "Lasagne"})
	assert.Contains(t, reply, "has been created")

	// Only Ana owns the cuisine.
	cuisines, err := backend.ListCuisines(bo.ID)
	require.NoError(t, err)
	assert.Empty(t, cuisines)

	cuisines, err = backend.ListCuisines(ana.ID)
	require.NoError(t, err)
	assert.Len(t, cuisines, 1)
}

func TestDurableSessionsSurviveRestart(t *testing.T) {
	dataDir := t.TempDir()
	backend := sqlite.New(dataDir, nil)

	ana := types.UserRef{ID: "ana-1", FirstName: "Ana"}

	sessions, err := sqlite.NewSessionStore(dataDir)
	require.NoError(t, err)
	ctrl := flow.NewController(backend, sessions, nil)

	ctrl.Handle(types.CommandEvent{User: ana, Command: types.CmdNewCuisine})
	ctrl.Handle(types.TextEvent{User: ana, Text: "Curry"})
	ctrl.Handle(types.TextEvent{User: ana, Text: "Rice 1 cup grains"})
	require.NoError(t, sessions.Close())

	// "Restart": fresh controller over the same data dir. The ingredient
	// entry loop picks up where it left off.
	sessions, err = sqlite.NewSessionStore(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })
	ctrl = flow.NewController(backend, sessions, nil)

	reply := ctrl.Handle(types.TextEvent{User: ana, Text: "Cumin 1 tsp spices"})
	assert.Contains(t, reply, "this session: 2")

	reply = ctrl.Handle(types.TextEvent{User: ana, Text: "done"})
	assert.Contains(t, reply, "Curry")

	ingredients, err := backend.ListIngredients(ana.ID, "Curry")
	require.NoError(t, err)
	assert.Len(t, ingredients, 2)
}
