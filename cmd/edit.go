package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/spf13/cobra"
)

var editWorkoutCmd = &cobra.Command{
	Use:   "edit [position|id]",
	Short: "Replace a logged set, keeping its id and (unless --date is given) its date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := app.ParseRef(args[0])
		if err != nil {
			return err
		}

		in, err := workoutInputFromFlags()
		if err != nil {
			return err
		}

		w, err := state.EditWorkout(cmd.Context(), ref, in)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Updated %s: %d × %.2f %s\n", w.Exercise, w.Reps, w.Weight, cfg.Display.Units)
		return nil
	},
}

func init() {
	registerWorkoutFlags(editWorkoutCmd)
	rootCmd.AddCommand(editWorkoutCmd)
}
