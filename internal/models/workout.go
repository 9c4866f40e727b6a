package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Workout struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Exercise string    `json:"exercise"`
	Reps     int       `json:"reps"`
	Weight   float64   `json:"weight"`
	Date     time.Time `json:"date"`
}

// NewWorkout builds a record with a fresh stable ID. Category is normalized to its
// canonical key.
func NewWorkout(category, exercise string, reps int, weight float64, date time.Time) Workout {
	return Workout{
		ID:       uuid.New().String(),
		Category: NormalizeCategory(category),
		Exercise: strings.TrimSpace(exercise),
		Reps:     reps,
		Weight:   weight,
		Date:     date,
	}
}

// ExerciseKey is the grouping key for an exercise name.
func ExerciseKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Volume is reps × weight for a single entry.
func (w Workout) Volume() float64 {
	return float64(w.Reps) * w.Weight
}

//
// For TOML dumps only
//

type WorkoutTOML struct {
	ID       string    `toml:"id"`
	Category string    `toml:"category"`
	Exercise string    `toml:"exercise"`
	Reps     int       `toml:"reps"`
	Weight   float64   `toml:"weight"`
	Date     time.Time `toml:"date"`
}

type DumpTOML struct {
	ExportedAt time.Time       `toml:"exported_at"`
	Workouts   []WorkoutTOML   `toml:"workout"`
	Checklist  map[string]bool `toml:"checklist"`
}
