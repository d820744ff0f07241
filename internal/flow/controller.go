// Package flow is the conversation state machine. It interprets each inbound
// gateway event against the user's current state and storage contents,
// applies the resulting mutations, and produces the reply text.
// See docs/ARCHITECTURE.md § Flow Controller.
package flow

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/iceboxlab/icebox/internal/paths"
	"github.com/iceboxlab/icebox/internal/state"
	"github.com/iceboxlab/icebox/pkg/types"
)

// Controller dispatches events. One instance serves all users; per-user
// serialization is the storage engine's concern, and the state store is safe
// for concurrent use.
type Controller struct {
	store    types.Store
	sessions state.Store
	log      *zap.Logger
}

// NewController wires a Controller. A nil logger disables logging.
func NewController(store types.Store, sessions state.Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, sessions: sessions, log: log}
}

// Handle processes one inbound event to completion and returns the reply to
// send. State mutations are applied before Handle returns, so the user's
// next message always sees them. Failures never escape as errors; every
// failure maps to reply text naming the next valid action.
func (c *Controller) Handle(ev types.Event) string {
	switch e := ev.(type) {
	case types.CommandEvent:
		return c.handleCommand(e)
	case types.TextEvent:
		return c.handleText(e)
	default:
		return msgHelp(ev.From().FirstName)
	}
}

func (c *Controller) handleCommand(e types.CommandEvent) string {
	switch e.Command {
	case types.CmdNewCuisine:
		return c.cmdNewCuisine(e.User)
	case types.CmdNewRefrigerator:
		return c.cmdNewRefrigerator(e.User)
	case types.CmdAddItem:
		return c.cmdAddItem(e.User, e.Args)
	case types.CmdAddIngredient:
		return c.cmdAddIngredient(e.User)
	case types.CmdEditRecipe:
		return msgEditRecipe(e.User.FirstName)
	case types.CmdEcoCuisine:
		return msgEcoCuisine(e.User.FirstName)
	case types.CmdSelectFood:
		return msgSelectFood(e.User.FirstName)
	default:
		return msgHelp(e.User.FirstName)
	}
}

// cmdNewCuisine sets up the cuisine collection (idempotently) and prompts
// for a cuisine name; existing cuisines are listed, not errored on.
func (c *Controller) cmdNewCuisine(user types.UserRef) string {
	created, err := c.store.EnsureUserSpace(user.ID)
	if err != nil {
		return c.fail(user, "ensure user space", err)
	}

	has, err := c.store.HasCuisineIndex(user.ID)
	if err != nil {
		return c.fail(user, "check cuisine index", err)
	}

	var reply string
	if has {
		cuisines, err := c.store.ListCuisines(user.ID)
		if err != nil {
			return c.fail(user, "list cuisines", err)
		}
		reply = msgCuisineWelcomeBack(user.FirstName, cuisines)
	} else {
		if err := c.store.EnsureCuisineIndex(user.ID); err != nil {
			return c.fail(user, "create cuisine index", err)
		}
		reply = msgCuisineSystemCreated(user.FirstName, created)
	}

	if !c.setState(user, AwaitingCuisineName{}) {
		return msgFailure(user.FirstName)
	}
	return reply
}

// cmdNewRefrigerator sets up or shows the refrigerator. It cancels any
// pending multi-step flow.
func (c *Controller) cmdNewRefrigerator(user types.UserRef) string {
	if !c.setState(user, Idle{}) {
		return msgFailure(user.FirstName)
	}

	created, err := c.store.EnsureUserSpace(user.ID)
	if err != nil {
		return c.fail(user, "ensure user space", err)
	}

	has, err := c.store.HasRefrigerator(user.ID)
	if err != nil {
		return c.fail(user, "check refrigerator", err)
	}
	if has {
		items, err := c.store.ListItems(user.ID)
		if err != nil {
			return c.fail(user, "list items", err)
		}
		return msgFridgeWelcomeBack(user.FirstName, items)
	}

	ok, err := c.store.CreateRefrigerator(user.ID)
	if err != nil {
		return c.fail(user, "create refrigerator", err)
	}
	if !ok {
		// Lost the has/create race with ourselves; treat as existing.
		items, err := c.store.ListItems(user.ID)
		if err != nil {
			return c.fail(user, "list items", err)
		}
		return msgFridgeWelcomeBack(user.FirstName, items)
	}

	profile := types.Profile{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if err := c.store.SaveProfile(user.ID, profile); err != nil {
		return c.fail(user, "save profile", err)
	}
	return msgFridgeCreated(user.FirstName, created)
}

// cmdAddItem is stateless: one command event carries the item. It cancels
// any pending multi-step flow.
func (c *Controller) cmdAddItem(user types.UserRef, args []string) string {
	if !c.setState(user, Idle{}) {
		return msgFailure(user.FirstName)
	}

	has, err := c.store.HasRefrigerator(user.ID)
	if err != nil {
		return c.fail(user, "check refrigerator", err)
	}
	if !has {
		return msgNoFridge(user.FirstName)
	}

	if len(args) == 0 {
		return msgAddItemUsage()
	}

	name, quantity, unit := parseItemArgs(args)
	ok, err := c.store.AddItem(user.ID, name, quantity, unit, "")
	if err != nil || !ok {
		return c.fail(user, "add item", err)
	}
	return msgItemAdded(name, quantity, unit)
}

// cmdAddIngredient enters cuisine selection when the user has cuisines to
// choose from. It cancels any pending multi-step flow first.
func (c *Controller) cmdAddIngredient(user types.UserRef) string {
	if !c.setState(user, Idle{}) {
		return msgFailure(user.FirstName)
	}

	has, err := c.store.HasCuisineIndex(user.ID)
	if err != nil {
		return c.fail(user, "check cuisine index", err)
	}
	if !has {
		return msgNoCuisines()
	}

	cuisines, err := c.store.ListCuisines(user.ID)
	if err != nil {
		return c.fail(user, "list cuisines", err)
	}
	if len(cuisines) == 0 {
		return msgNoCuisines()
	}

	if !c.setState(user, SelectingCuisine{}) {
		return msgFailure(user.FirstName)
	}
	return msgSelectCuisine(cuisines)
}

func (c *Controller) handleText(e types.TextEvent) string {
	user := e.User
	text := strings.TrimSpace(e.Text)

	r, present, err := c.sessions.Get(user.ID)
	if err != nil {
		return c.fail(user, "read conversation state", err)
	}
	st, ok := decodeState(r, present)
	if !ok {
		// Lost context: reset and ask the user to restart the flow.
		if err := c.sessions.Clear(user.ID); err != nil {
			return c.fail(user, "clear conversation state", err)
		}
		c.log.Warn("reset lost conversation state",
			zap.String("user", user.ID), zap.String("flow", r.Flow))
		return msgLostContext()
	}

	switch s := st.(type) {
	case AwaitingCuisineName:
		return c.textCuisineName(user, text)
	case SelectingCuisine:
		return c.textSelectCuisine(user, text)
	case AddingIngredients:
		return c.textIngredient(user, s, text)
	default:
		return msgHelp(user.FirstName)
	}
}

// textCuisineName validates and creates a cuisine, then drops straight into
// the ingredient entry loop. All failures keep the state so the user can
// retry with another name.
func (c *Controller) textCuisineName(user types.UserRef, name string) string {
	if !types.ValidCuisineName(name) {
		return msgCuisineNameLength()
	}

	exists, err := c.store.CuisineExists(user.ID, name)
	if err != nil {
		return c.fail(user, "check cuisine", err)
	}
	if exists {
		return msgCuisineConflict(name)
	}

	if _, err := c.store.CreateCuisine(user.ID, name, ""); err != nil {
		if errors.Is(err, types.ErrCuisineExists) {
			return msgCuisineConflict(name)
		}
		return c.fail(user, "create cuisine", err)
	}

	if !c.setState(user, AddingIngredients{Cuisine: name}) {
		return msgFailure(user.FirstName)
	}
	return msgCuisineCreated(user.FirstName, name, paths.CuisineFilename(name))
}

// textSelectCuisine resolves the named cuisine and enters the ingredient
// entry loop, showing what the cuisine already contains.
func (c *Controller) textSelectCuisine(user types.UserRef, name string) string {
	exists, err := c.store.CuisineExists(user.ID, name)
	if err != nil {
		return c.fail(user, "check cuisine", err)
	}
	if !exists {
		return msgUnknownCuisine(name)
	}

	ingredients, err := c.store.ListIngredients(user.ID, name)
	if err != nil {
		return c.fail(user, "list ingredients", err)
	}

	if !c.setState(user, AddingIngredients{Cuisine: name}) {
		return msgFailure(user.FirstName)
	}
	return msgCuisineSelected(name, ingredients)
}

// textIngredient handles one line of the ingredient entry loop.
func (c *Controller) textIngredient(user types.UserRef, s AddingIngredients, text string) string {
	if strings.EqualFold(text, "done") {
		if err := c.sessions.Clear(user.ID); err != nil {
			return c.fail(user, "clear conversation state", err)
		}
		return msgIngredientsDone(s.Cuisine, s.Added)
	}

	ing, ok := parseIngredientLine(text)
	if !ok {
		// Format error: no mutation, stay in the loop.
		return msgIngredientFormat()
	}

	stored, err := c.store.AddIngredient(user.ID, s.Cuisine, ing)
	if err != nil {
		return c.fail(user, "add ingredient", err)
	}
	if !stored {
		// The cuisine store vanished underneath the flow.
		if err := c.sessions.Clear(user.ID); err != nil {
			return c.fail(user, "clear conversation state", err)
		}
		return msgLostContext()
	}

	s.Added++
	if !c.setState(user, s) {
		return msgFailure(user.FirstName)
	}
	return msgIngredientAdded(ing, s.Added)
}

// setState applies a state transition before any reply is produced. Idle
// clears the record. Reports false on store failure, already logged.
func (c *Controller) setState(user types.UserRef, s State) bool {
	var err error
	if _, idle := s.(Idle); idle {
		err = c.sessions.Clear(user.ID)
	} else {
		err = c.sessions.Set(user.ID, encodeState(s))
	}
	if err != nil {
		c.log.Error("write conversation state", zap.String("user", user.ID), zap.Error(err))
		return false
	}
	return true
}

// fail logs a fatal storage failure and produces the generic failure reply.
// There is no retry policy; the user decides whether to try again.
func (c *Controller) fail(user types.UserRef, op string, err error) string {
	c.log.Error(op, zap.String("user", user.ID), zap.Error(err))
	return msgFailure(user.FirstName)
}
