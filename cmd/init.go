package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lsg.dev/pkg/lsg/internal/config"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Create the configuration file at its conventional location, populated
with the commented built-in defaults so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := config.DefaultPath()
			if targetPath == "" {
				return fmt.Errorf("cannot locate the user configuration directory")
			}

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("%s already exists, not overwriting it", targetPath)
			}

			if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			if err := os.WriteFile(targetPath, []byte(config.DefaultTemplate()), 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("wrote", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
