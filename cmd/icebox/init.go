package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration and data directories",
	Long: `Create the configuration directory with a default config.yaml and the
data directory that will hold the per-user stores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		// Config dir and config.yaml were created by PersistentPreRunE.
		fmt.Printf("Config: %s\nData:   %s\n", configDir, dataDir)
		return nil
	},
}
