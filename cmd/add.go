package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	workoutCategory string
	workoutExercise string
	workoutReps     int
	workoutWeight   float64
	workoutDate     string
)

var addWorkoutCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a set",
	Example: `  liftlog add -C legs -e Squats -r 10 -w 60
  liftlog add -C chest -e "Bench Press" -r 5 -w 80 --date 2025-03-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := workoutInputFromFlags()
		if err != nil {
			return err
		}

		w, err := state.AddWorkout(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged %s: %d × %.2f %s (%s)\n", w.Exercise, w.Reps, w.Weight, cfg.Display.Units, utils.FormatLocal(w.Date, loc))
		return nil
	},
}

// workoutInputFromFlags reads the shared add/edit flags. An empty --date stays zero.
func workoutInputFromFlags() (app.WorkoutInput, error) {
	in := app.WorkoutInput{
		Category: workoutCategory,
		Exercise: workoutExercise,
		Reps:     workoutReps,
		Weight:   workoutWeight,
	}
	if workoutDate == "" {
		return in, nil
	}

	day, err := utils.ParseDay(workoutDate, loc)
	if err != nil {
		return in, &app.ValidationError{Field: "date", Reason: err.Error()}
	}
	// Logging a past day keeps the current time of day so same-day sets stay ordered.
	now := time.Now().In(loc)
	in.Date = time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), 0, loc)
	return in, nil
}

func registerWorkoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&workoutCategory, "category", "C", "", fmt.Sprintf("Category (%s)", strings.Join(models.Categories, ", ")))
	cmd.Flags().StringVarP(&workoutExercise, "exercise", "e", "", "Exercise name")
	cmd.Flags().IntVarP(&workoutReps, "reps", "r", 0, "Reps performed")
	cmd.Flags().Float64VarP(&workoutWeight, "weight", "w", 0, "Weight used")
	cmd.Flags().StringVarP(&workoutDate, "date", "d", "", "Day of the set (e.g. 2025-02-07 or 07/02/25), default today")

	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("exercise")
	cmd.MarkFlagRequired("reps")
}

func init() {
	registerWorkoutFlags(addWorkoutCmd)
	rootCmd.AddCommand(addWorkoutCmd)
}
