package types

// Command names delivered by the gateway.
const (
	CmdNewCuisine      = "newcuisine"
	CmdNewRefrigerator = "newrefrigerator"
	CmdAddItem         = "additem"
	CmdAddIngredient   = "addingredient"
	CmdEditRecipe      = "editrecipe"
	CmdEcoCuisine      = "ecocuisine"
	CmdSelectFood      = "selectfood"
)

// Event is an inbound gateway event. Exactly one of CommandEvent or
// TextEvent is delivered per message.
type Event interface {
	// From returns the user the event belongs to.
	From() UserRef
}

// CommandEvent is a parsed command with its positional arguments.
type CommandEvent struct {
	User    UserRef
	Command string
	Args    []string
}

// From implements Event.
func (e CommandEvent) From() UserRef { return e.User }

// TextEvent is a plain text message, delivered only when the message is not
// a command.
type TextEvent struct {
	User UserRef
	Text string
}

// From implements Event.
func (e TextEvent) From() UserRef { return e.User }
