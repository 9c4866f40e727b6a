package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:     "delete [position|id]",
	Aliases: []string{"rm"},
	Short:   "Delete a logged set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := app.ParseRef(args[0])
		if err != nil {
			return err
		}

		w, err := state.DeleteWorkout(cmd.Context(), ref)
		if err != nil {
			return err
		}

		fmt.Printf("🗑  Deleted %s (%s)\n", w.Exercise, utils.FormatLocal(w.Date, loc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
