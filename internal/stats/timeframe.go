package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

type Mode string

const (
	ModeLastWorkout Mode = "lastWorkout"
	ModeLastWeek    Mode = "lastWeek"
	ModeLastMonth   Mode = "lastMonth"
	ModeCustom      Mode = "custom"
	ModeAll         Mode = "all"
)

var Modes = []Mode{ModeLastWorkout, ModeLastWeek, ModeLastMonth, ModeCustom, ModeAll}

// ParseMode maps a selector value to a Mode. Unknown values fall back to ModeAll.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lastworkout", "last-workout", "workout":
		return ModeLastWorkout
	case "lastweek", "last-week", "week":
		return ModeLastWeek
	case "lastmonth", "last-month", "month":
		return ModeLastMonth
	case "custom":
		return ModeCustom
	default:
		return ModeAll
	}
}

// Period is a date interval. Containment is inclusive on both ends.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Window is the current period plus the optional comparison period.
type Window struct {
	Current  Period
	Previous *Period
}

// Selection is the timeframe choice; Custom is only read in ModeCustom.
type Selection struct {
	Mode   Mode
	Custom *Period
}

type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s is after end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// ValidateCustom checks a custom range. No range at all is valid: it resolves to all time.
func ValidateCustom(p *Period) error {
	if p != nil && p.Start.After(p.End) {
		return &InvalidRangeError{Start: p.Start, End: p.End}
	}
	return nil
}

// Resolve computes the current and previous periods for a selection. history is the
// record set of a single exercise key and is only consulted in ModeLastWorkout.
// Calendar arithmetic happens in now's location.
func Resolve(sel Selection, now time.Time, history []models.Workout) (Window, error) {
	switch sel.Mode {
	case ModeLastWorkout:
		if len(history) == 0 {
			return allTime(now), nil
		}
		return lastWorkout(now, history), nil

	case ModeLastWeek:
		monday := weekStart(now)
		prevStart := addDays(monday, -7)
		return Window{
			Current:  Period{Start: monday, End: now},
			Previous: &Period{Start: prevStart, End: monday},
		}, nil

	case ModeLastMonth:
		y, m, _ := now.Date()
		first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		prevFirst := time.Date(y, m-1, 1, 0, 0, 0, 0, now.Location())
		// Day 0 of the current month is the last day of the previous one.
		prevLast := time.Date(y, m, 0, 23, 59, 59, int(999*time.Millisecond), now.Location())
		return Window{
			Current:  Period{Start: first, End: now},
			Previous: &Period{Start: prevFirst, End: prevLast},
		}, nil

	case ModeCustom:
		if sel.Custom == nil {
			return allTime(now), nil
		}
		if err := ValidateCustom(sel.Custom); err != nil {
			return Window{}, err
		}
		span := sel.Custom.Duration()
		prevEnd := sel.Custom.Start.Add(-time.Millisecond)
		return Window{
			Current:  *sel.Custom,
			Previous: &Period{Start: prevEnd.Add(-span), End: prevEnd},
		}, nil

	default:
		return allTime(now), nil
	}
}

func allTime(now time.Time) Window {
	return Window{Current: Period{Start: time.Unix(0, 0).In(now.Location()), End: now}}
}

func lastWorkout(now time.Time, history []models.Workout) Window {
	dates := make([]time.Time, 0, len(history))
	for _, w := range history {
		dates = append(dates, w.Date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	latest := dates[len(dates)-1]
	win := Window{Current: Period{Start: latest, End: now}}
	if len(dates) >= 2 {
		win.Previous = &Period{Start: dates[len(dates)-2], End: latest}
	}
	return win
}

// weekStart returns Monday 00:00 of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	diffToMonday := wd - 1
	if wd == 0 {
		diffToMonday = 6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-diffToMonday, 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}
