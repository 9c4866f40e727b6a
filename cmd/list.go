package cmd

import (
	"os"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/render"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterExercise string
	filterCategory string
	filterDay      string
)

// listCmd prints the log in entry order. Positions shown are the ones edit and
// delete accept, so filters only hide rows.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"history"},
	Short:   "List logged sets, optionally filtered by exercise, category and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := state.Store.All()

		var day string
		if filterDay != "" {
			parsed, err := utils.ParseDay(filterDay, loc)
			if err != nil {
				return err
			}
			day = parsed.Format("2006-01-02")
		}

		rows := make([]render.ListedWorkout, 0, len(all))
		for i, w := range all {
			if filterExercise != "" && models.ExerciseKey(w.Exercise) != models.ExerciseKey(filterExercise) {
				continue
			}
			if filterCategory != "" && !strings.EqualFold(w.Category, strings.TrimSpace(filterCategory)) {
				continue
			}
			if day != "" && w.Date.In(loc).Format("2006-01-02") != day {
				continue
			}
			rows = append(rows, render.ListedWorkout{Position: i + 1, Workout: w})
		}

		render.WorkoutList(os.Stdout, rows, loc, cfg.Display.Units)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Filter by exercise name (case insensitive)")
	listCmd.Flags().StringVarP(&filterCategory, "category", "C", "", "Filter by category")
	listCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
