package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the workout log and checklist to a TOML dump (or the log to Parquet)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(exportFormat)

		outputFile := ""
		if len(args) == 1 {
			outputFile = args[0]
		}

		switch format {
		case "toml":
			if outputFile == "" {
				var err error
				outputFile, err = storage.GetDumpPath()
				if err != nil {
					return err
				}
			}
			if err := storage.ExportToTOML(state.Store, state.Checklist, outputFile); err != nil {
				return fmt.Errorf("error exporting log: %w", err)
			}

		case "parquet":
			if outputFile == "" {
				outputFile = "liftlog.parquet"
			}
			data, err := storage.ExportParquet(state.Store.All())
			if err != nil {
				return fmt.Errorf("error encoding parquet: %w", err)
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

		default:
			return fmt.Errorf("unknown export format %q (toml|parquet)", exportFormat)
		}

		abs, err := filepath.Abs(outputFile)
		if err != nil {
			abs = outputFile
		}
		fmt.Printf("✅ Exported %d workouts to %s\n", state.Store.Len(), abs)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dump-file]",
	Short: "Replace the workout log and checklist with a TOML dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dumpFile := ""
		if len(args) == 1 {
			dumpFile = args[0]
		} else {
			var err error
			dumpFile, err = storage.GetDumpPath()
			if err != nil {
				return err
			}
		}

		n, err := storage.ImportFromTOML(cmd.Context(), state.Store, state.Checklist, dumpFile)
		if err != nil {
			return fmt.Errorf("Failed to import dump: %w", err)
		}
		fmt.Printf("✅ Imported %d workouts from %s\n", n, dumpFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml", "Export format: toml or parquet")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
