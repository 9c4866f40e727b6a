package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// ValidationError is bad user input. The operation that returned it changed nothing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WorkoutInput is what the user typed in for an add or an edit.
type WorkoutInput struct {
	Category string
	Exercise string
	Reps     int
	Weight   float64
	// Zero means "now".
	Date time.Time
}

func (in WorkoutInput) Validate() error {
	if strings.TrimSpace(in.Exercise) == "" {
		return &ValidationError{Field: "exercise", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if !models.IsKnownCategory(in.Category) {
		return &ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%q is not one of %s", in.Category, strings.Join(models.Categories, ", ")),
		}
	}
	if in.Reps <= 0 {
		return &ValidationError{Field: "reps", Reason: "must be greater than zero"}
	}
	if in.Weight < 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return &ValidationError{Field: "weight", Reason: "must be zero or more"}
	}
	return nil
}
