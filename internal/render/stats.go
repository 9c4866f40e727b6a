package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/stats"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

var (
	upColor   = color.New(color.FgGreen)
	downColor = color.New(color.FgRed)
	flatColor = color.New(color.FgHiBlack)
)

// FormatChange renders a percent change with its trend arrow, or N/A.
func FormatChange(change *float64) string {
	switch stats.Classify(change) {
	case stats.TrendUp:
		return fmt.Sprintf("▲ %.1f%%", *change)
	case stats.TrendDown:
		return fmt.Sprintf("▼ %.1f%%", *change)
	case stats.TrendFlat:
		return fmt.Sprintf("► %.1f%%", *change)
	default:
		return "N/A"
	}
}

func changeCell(change *float64) Cell {
	c := Cell{Text: FormatChange(change), Right: true}
	switch stats.Classify(change) {
	case stats.TrendUp:
		c.Color = upColor
	case stats.TrendDown:
		c.Color = downColor
	default:
		c.Color = flatColor
	}
	return c
}

func num(v float64) Cell {
	return Cell{Text: strconv.FormatFloat(v, 'f', 2, 64), Right: true}
}

// StatsTable prints one row per key comparing the current period to the previous one.
func StatsTable(w io.Writer, reports []stats.KeyReport, keyLabel, units string) {
	if len(reports) == 0 {
		fmt.Fprintln(w, color.New(color.FgMagenta).Sprint("No workouts logged yet."))
		return
	}

	t := Table{
		Headers: []string{keyLabel, "Sets", "Avg Reps", "Δ Reps", "Avg Weight (" + units + ")", "Δ Weight"},
	}
	for _, r := range reports {
		t.Rows = append(t.Rows, []Cell{
			{Text: r.Key, Color: color.New(color.FgCyan)},
			{Text: strconv.Itoa(r.Current.Count), Right: true},
			num(r.Current.AvgReps),
			changeCell(r.RepsChange),
			num(r.Current.AvgWeight),
			changeCell(r.WeightChange),
		})
	}
	t.Render(w)
}

// TotalsTable prints aggregate totals per key, sorted by key.
func TotalsTable(w io.Writer, totals map[string]stats.Aggregate, keyLabel string, label func(string) string) {
	if len(totals) == 0 {
		fmt.Fprintln(w, color.New(color.FgMagenta).Sprint("No workouts in this timeframe."))
		return
	}
	if label == nil {
		label = func(s string) string { return s }
	}

	t := Table{
		Headers: []string{keyLabel, "Sets", "Total Reps", "Total Weight", "Avg Reps", "Avg Weight", "Volume", "Best 1RM"},
	}
	for _, key := range SortedKeys(totals) {
		a := totals[key]
		t.Rows = append(t.Rows, []Cell{
			{Text: label(key), Color: color.New(color.FgCyan)},
			{Text: strconv.Itoa(a.Count), Right: true},
			{Text: strconv.Itoa(a.TotalReps), Right: true},
			num(a.TotalWeight),
			num(a.AvgReps),
			num(a.AvgWeight),
			num(a.Volume),
			num(a.BestOneRM),
		})
	}
	t.Render(w)
}

func SortedKeys(m map[string]stats.Aggregate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListedWorkout is a record plus its 1-based position in the full log.
type ListedWorkout struct {
	Position int
	Workout  models.Workout
}

func WorkoutList(w io.Writer, workouts []ListedWorkout, loc *time.Location, units string) {
	if len(workouts) == 0 {
		fmt.Fprintln(w, color.New(color.FgMagenta).Sprint("No workouts logged yet."))
		return
	}

	t := Table{
		Headers: []string{"#", "Date", "Category", "Exercise", "Reps", "Weight (" + units + ")", "ID"},
	}
	for _, lw := range workouts {
		wk := lw.Workout
		t.Rows = append(t.Rows, []Cell{
			{Text: strconv.Itoa(lw.Position), Right: true},
			Plain(utils.FormatLocal(wk.Date, loc)),
			{Text: models.CategoryLabel(wk.Category), Color: color.New(color.FgYellow)},
			{Text: wk.Exercise, Color: color.New(color.FgCyan)},
			{Text: strconv.Itoa(wk.Reps), Right: true},
			num(wk.Weight),
			{Text: shortID(wk.ID), Color: flatColor},
		})
	}
	t.Render(w)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Checklist prints the checklist items sorted by key.
func Checklist(w io.Writer, keys []string, done func(string) bool) {
	if len(keys) == 0 {
		fmt.Fprintln(w, color.New(color.FgMagenta).Sprint("Checklist is empty."))
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	for _, k := range keys {
		mark := "[ ]"
		if done(k) {
			mark = green("[x]")
		}
		fmt.Fprintf(w, "  %s %s\n", mark, k)
	}
}
