package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/render"
	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Show or update the exercise checklist",
	RunE:  showChecklist,
}

var showChecklistCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the exercise checklist",
	RunE:  showChecklist,
}

func showChecklist(cmd *cobra.Command, args []string) error {
	render.Checklist(os.Stdout, state.Checklist.Keys(), state.Checklist.Done)
	return nil
}

func setChecked(done bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return &app.ValidationError{Field: "exercise", Reason: "must not be empty"}
		}
		if err := state.Checklist.Set(cmd.Context(), name, done); err != nil {
			return err
		}
		fmt.Printf("✅ %s %s\n", name, checkedWord(done))
		return nil
	}
}

func checkedWord(done bool) string {
	if done {
		return "checked"
	}
	return "unchecked"
}

var checkCmd = &cobra.Command{
	Use:   "check [exercise]",
	Short: "Mark an exercise as done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setChecked(true),
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck [exercise]",
	Short: "Mark an exercise as not done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setChecked(false),
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [exercise]",
	Short: "Flip an exercise between done and not done",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		done, err := state.ToggleChecklist(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("✅ %s %s\n", strings.TrimSpace(name), checkedWord(done))
		return nil
	},
}

var resetChecklistCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := state.Checklist.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("✅ Checklist reset")
		return nil
	},
}

var seedChecklistCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add every logged exercise to the checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := state.SeedChecklist(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added %d exercises to the checklist\n", added)
		return nil
	},
}

func init() {
	checklistCmd.AddCommand(showChecklistCmd, checkCmd, uncheckCmd, toggleCmd, resetChecklistCmd, seedChecklistCmd)
	rootCmd.AddCommand(checklistCmd)
}
