package stats

import (
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	log "github.com/sirupsen/logrus"
)

// KeyReport compares one key's current period against its previous period.
type KeyReport struct {
	Key          string
	Window       Window
	Current      Aggregate
	Previous     Aggregate
	RepsChange   *float64
	WeightChange *float64
}

func (r KeyReport) HasPrevious() bool {
	return r.Window.Previous != nil
}

// Report builds a KeyReport for every distinct key in records, sorted by key.
// Everything is recomputed from scratch on every call.
func Report(records []models.Workout, sel Selection, now time.Time, keyFn KeyFunc) ([]KeyReport, error) {
	if sel.Mode == ModeCustom {
		if err := ValidateCustom(sel.Custom); err != nil {
			return nil, err
		}
	}

	keys := Keys(records, keyFn)
	reports := make([]KeyReport, 0, len(keys))
	for _, key := range keys {
		win, err := Resolve(sel, now, FilterByKey(records, key, keyFn))
		if err != nil {
			return nil, err
		}

		current := Summarize(FilterByPeriod(records, key, keyFn, win.Current))
		var previous Aggregate
		if win.Previous != nil {
			previous = Summarize(FilterByPeriod(records, key, keyFn, *win.Previous))
		}

		reports = append(reports, KeyReport{
			Key:          key,
			Window:       win,
			Current:      current,
			Previous:     previous,
			RepsChange:   PercentChange(current.AvgReps, previous.AvgReps),
			WeightChange: PercentChange(current.AvgWeight, previous.AvgWeight),
		})
	}

	log.WithFields(log.Fields{
		"mode":    sel.Mode,
		"keys":    len(reports),
		"records": len(records),
	}).Debug("stats report computed")

	return reports, nil
}

// Totals aggregates every record inside the current period of a non-per-key
// selection. In ModeLastWorkout each key keeps its own window, so the per-key
// current aggregates are returned instead.
func Totals(records []models.Workout, sel Selection, now time.Time, keyFn KeyFunc) (map[string]Aggregate, error) {
	if sel.Mode == ModeLastWorkout {
		reports, err := Report(records, sel, now, keyFn)
		if err != nil {
			return nil, err
		}
		out := make(map[string]Aggregate, len(reports))
		for _, r := range reports {
			out[r.Key] = r.Current
		}
		return out, nil
	}

	win, err := Resolve(sel, now, nil)
	if err != nil {
		return nil, err
	}
	var inPeriod []models.Workout
	for _, w := range records {
		if win.Current.Contains(w.Date) {
			inPeriod = append(inPeriod, w)
		}
	}
	return GroupBy(inPeriod, keyFn), nil
}
