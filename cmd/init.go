package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default config file and create the storage",
	Annotations: map[string]string{"state": "none"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}

		if err := config.Write(cfg, path); err != nil {
			fmt.Printf("⚠ %s, keeping it\n", err)
		} else {
			fmt.Printf("✅ Config written to %s\n", path)
		}

		s, err := storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("Failed to initialize storage: %w", err)
		}
		defer s.Close()

		fmt.Printf("✅ Storage ready (%s backend)\n", cfg.Storage.Backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
