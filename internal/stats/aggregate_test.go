package stats

import (
	"testing"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workout(category, exercise string, reps int, weight float64, at time.Time) models.Workout {
	return models.NewWorkout(category, exercise, reps, weight, at)
}

func TestSummarize_Empty(t *testing.T) {
	agg := Summarize(nil)
	assert.Equal(t, Aggregate{}, agg)
	assert.Zero(t, agg.AvgReps)
	assert.Zero(t, agg.AvgWeight)
}

func TestSummarize_AveragesMatchTotals(t *testing.T) {
	var records []models.Workout
	for i := 1; i <= 17; i++ {
		records = append(records, workout("legs", "Squats", i%6+1, float64(i)*2.75, date(2025, time.March, i, 10, 0)))
		agg := Summarize(records)
		require.Equal(t, i, agg.Count)
		assert.InDelta(t, agg.TotalWeight, agg.AvgWeight*float64(agg.Count), 1e-9)
		assert.InDelta(t, float64(agg.TotalReps), agg.AvgReps*float64(agg.Count), 1e-9)
	}
}

func TestSummarize_VolumeAndOneRM(t *testing.T) {
	agg := Summarize([]models.Workout{
		workout("legs", "Squats", 10, 60, date(2025, time.March, 1, 10, 0)),
		workout("legs", "Squats", 3, 100, date(2025, time.March, 2, 10, 0)),
	})
	assert.InDelta(t, 600+300, agg.Volume, 1e-9)
	assert.InDelta(t, 110, agg.BestOneRM, 1e-9)
}

func TestGroupBy_Exercise(t *testing.T) {
	d1 := date(2025, time.March, 10, 10, 0)
	d2 := date(2025, time.March, 12, 10, 0)
	records := []models.Workout{
		workout("legs", "Squats", 10, 60, d1),
		workout("legs", "squats ", 8, 65, d2),
		workout("chest", "Bench Press", 5, 80, d2),
	}

	groups := GroupBy(records, ByExercise)
	require.Len(t, groups, 2)

	squats := groups["squats"]
	assert.Equal(t, 18, squats.TotalReps)
	assert.Equal(t, 125.0, squats.TotalWeight)
	assert.Equal(t, 2, squats.Count)
	assert.Equal(t, 9.0, squats.AvgReps)
	assert.Equal(t, 62.5, squats.AvgWeight)

	assert.Equal(t, 1, groups["bench press"].Count)
}

func TestGroupBy_Category(t *testing.T) {
	d := date(2025, time.March, 10, 10, 0)
	records := []models.Workout{
		workout("Legs", "Squats", 10, 60, d),
		workout("legs", "Lunges", 12, 20, d),
		workout("CHEST", "Bench Press", 5, 80, d),
	}

	groups := GroupBy(records, ByCategory)
	assert.Equal(t, []string{"chest", "legs"}, Keys(records, ByCategory))
	assert.Equal(t, 2, groups["legs"].Count)
	assert.Equal(t, 22, groups["legs"].TotalReps)
	assert.Equal(t, 1, groups["chest"].Count)
}

func TestFilterByPeriod(t *testing.T) {
	start := date(2025, time.March, 10, 0, 0)
	end := date(2025, time.March, 20, 0, 0)
	records := []models.Workout{
		workout("legs", "Squats", 1, 10, start.Add(-time.Millisecond)),
		workout("legs", "Squats", 2, 10, start),
		workout("legs", "Deadlift", 3, 10, start.Add(time.Hour)),
		workout("legs", "SQUATS", 4, 10, date(2025, time.March, 15, 0, 0)),
		workout("legs", "Squats", 5, 10, end),
		workout("legs", "Squats", 6, 10, end.Add(time.Millisecond)),
	}

	got := FilterByPeriod(records, "Squats", ByExercise, Period{Start: start, End: end})
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Reps)
	assert.Equal(t, 4, got[1].Reps)
	assert.Equal(t, 5, got[2].Reps)

	assert.Empty(t, FilterByPeriod(records, "curls", ByExercise, Period{Start: start, End: end}))
}

func TestKeys(t *testing.T) {
	d := date(2025, time.March, 10, 0, 0)
	records := []models.Workout{
		workout("legs", "Squats", 1, 10, d),
		workout("chest", "Bench Press", 1, 10, d),
		workout("legs", "squats", 1, 10, d),
	}
	assert.Equal(t, []string{"bench press", "squats"}, Keys(records, ByExercise))
	assert.Empty(t, Keys(nil, ByExercise))
}
