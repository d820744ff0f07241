package types

import "errors"

// Config holds the parameters needed to assemble a Backend and a
// conversation state store.
type Config struct {
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	StateBackend string `json:"state_backend" yaml:"state_backend"`
}

// Supported conversation state backends.
const (
	StateMemory = "memory"
	StateSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrDataDirEmpty        = errors.New("data dir must not be empty")
	ErrStateBackendUnknown = errors.New("unknown state backend")
)

// knownStateBackends lists the state backends that Validate accepts.
var knownStateBackends = map[string]bool{
	StateMemory: true,
	StateSQLite: true,
}

// Validate checks that the Config is well-formed. An empty StateBackend is
// accepted and treated as StateMemory.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.StateBackend != "" && !knownStateBackends[c.StateBackend] {
		return ErrStateBackendUnknown
	}
	return nil
}
