// The chat command: a line-oriented local gateway. Lines starting with "/"
// become command events, everything else becomes text events; replies print
// to stdout. The network transport an actual deployment would use sits
// outside this repository and speaks the same two event types.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iceboxlab/icebox/internal/flow"
	"github.com/iceboxlab/icebox/internal/sqlite"
	"github.com/iceboxlab/icebox/internal/state"
	"github.com/iceboxlab/icebox/pkg/types"
)

// identityFile holds the generated user ID inside the config dir, so the
// local profile keeps its stores across sessions.
const identityFile = "identity"

var flagName string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a local chat session with the assistant",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&flagName, "name", "", "first name the assistant addresses you by (default: $USER)")
}

func runChat(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	cfg := types.Config{DataDir: dataDir, StateBackend: configStateBackend}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := zap.NewNop()
	if flagVerbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer log.Sync()

	sessions, err := newStateStore(cfg)
	if err != nil {
		return err
	}
	defer sessions.Close()

	backend := sqlite.New(dataDir, log)
	controller := flow.NewController(backend, sessions, log)

	user, err := localUser(configDir)
	if err != nil {
		return err
	}

	fmt.Printf("icebox v%s — chatting as %s. Type /quit to leave.\n\n", version, user.FirstName)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			break
		}
		if line != "" {
			fmt.Fprintf(out, "%s\n\n", controller.Handle(parseLine(user, line)))
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// newStateStore picks the conversation state backing from config.
func newStateStore(cfg types.Config) (state.Store, error) {
	if cfg.StateBackend == types.StateSQLite {
		return sqlite.NewSessionStore(cfg.DataDir)
	}
	return state.NewMemory(), nil
}

// parseLine turns one input line into a gateway event.
func parseLine(user types.UserRef, line string) types.Event {
	if !strings.HasPrefix(line, "/") {
		return types.TextEvent{User: user, Text: line}
	}
	fields := strings.Fields(line)
	return types.CommandEvent{
		User:    user,
		Command: strings.TrimPrefix(fields[0], "/"),
		Args:    fields[1:],
	}
}

// localUser loads or creates the local profile. The user ID is a UUID
// persisted in the config dir; the first name comes from --name or $USER.
func localUser(configDir string) (types.UserRef, error) {
	name := flagName
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		name = "friend"
	}

	path := filepath.Join(configDir, identityFile)
	raw, err := os.ReadFile(path)
	if err == nil {
		return types.UserRef{ID: strings.TrimSpace(string(raw)), FirstName: name}, nil
	}
	if !os.IsNotExist(err) {
		return types.UserRef{}, fmt.Errorf("read identity: %w", err)
	}

	id := newUserID()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return types.UserRef{}, fmt.Errorf("write identity: %w", err)
	}
	return types.UserRef{ID: id, FirstName: name}, nil
}

// newUserID generates a UUID v7 identifier, falling back to v4 if v7
// generation fails.
func newUserID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
