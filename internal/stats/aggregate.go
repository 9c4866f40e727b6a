package stats

import (
	"math"
	"sort"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// Aggregate is derived from a group of records and never stored.
type Aggregate struct {
	TotalReps   int     `json:"totalReps"`
	TotalWeight float64 `json:"totalWeight"`
	Count       int     `json:"count"`
	AvgReps     float64 `json:"avgReps"`
	AvgWeight   float64 `json:"avgWeight"`
	// Volume is Σ reps × weight.
	Volume    float64 `json:"volume"`
	BestOneRM float64 `json:"bestOneRM"`
}

// KeyFunc extracts the grouping key of a record.
type KeyFunc func(models.Workout) string

// ByExercise groups by lower-cased exercise name.
func ByExercise(w models.Workout) string {
	return models.ExerciseKey(w.Exercise)
}

// ByCategory groups by the canonical category key.
func ByCategory(w models.Workout) string {
	return models.NormalizeCategory(w.Category)
}

// Summarize aggregates a set of records. An empty set yields all zeros.
func Summarize(records []models.Workout) Aggregate {
	var agg Aggregate
	for _, w := range records {
		agg.TotalReps += w.Reps
		agg.TotalWeight += w.Weight
		agg.Volume += w.Volume()
		agg.BestOneRM = math.Max(agg.BestOneRM, utils.CalculateEpley1RM(w.Weight, w.Reps))
		agg.Count++
	}
	if agg.Count > 0 {
		agg.AvgReps = float64(agg.TotalReps) / float64(agg.Count)
		agg.AvgWeight = agg.TotalWeight / float64(agg.Count)
	}
	return agg
}

// GroupBy aggregates records per key.
func GroupBy(records []models.Workout, key KeyFunc) map[string]Aggregate {
	groups := make(map[string][]models.Workout)
	for _, w := range records {
		k := key(w)
		groups[k] = append(groups[k], w)
	}

	out := make(map[string]Aggregate, len(groups))
	for k, g := range groups {
		out[k] = Summarize(g)
	}
	return out
}

// Keys returns the distinct keys of records, sorted.
func Keys(records []models.Workout, key KeyFunc) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, w := range records {
		k := key(w)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// FilterByPeriod returns, in their original order, the records whose key matches
// (case-insensitively) and whose date lies within p, both ends inclusive.
func FilterByPeriod(records []models.Workout, key string, keyFn KeyFunc, p Period) []models.Workout {
	want := models.ExerciseKey(key)
	var out []models.Workout
	for _, w := range records {
		if models.ExerciseKey(keyFn(w)) != want {
			continue
		}
		if !p.Contains(w.Date) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// FilterByKey returns every record of a key regardless of date.
func FilterByKey(records []models.Workout, key string, keyFn KeyFunc) []models.Workout {
	want := models.ExerciseKey(key)
	var out []models.Workout
	for _, w := range records {
		if models.ExerciseKey(keyFn(w)) == want {
			out = append(out, w)
		}
	}
	return out
}
