// Package app holds the application state and the user-facing operations on it.
// Every mutating operation is validate, modify, persist; the caller re-renders
// from the returned state afterwards.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/stats"
	"github.com/misterclayt0n/liftlog/internal/storage"
	log "github.com/sirupsen/logrus"
)

type State struct {
	Store     *storage.RecordStore
	Checklist *storage.Checklist
	Selection stats.Selection
	Now       func() time.Time
}

// Load builds the state from a slot store, reading both slots.
func Load(ctx context.Context, slots storage.SlotStore, sel stats.Selection) (*State, error) {
	st := &State{
		Store:     storage.NewRecordStore(slots),
		Checklist: storage.NewChecklist(slots),
		Selection: sel,
		Now:       time.Now,
	}
	if err := st.Store.Load(ctx); err != nil {
		return nil, err
	}
	if err := st.Checklist.Load(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// UseLocation makes the state clock report wall time in loc.
func (s *State) UseLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	s.Now = func() time.Time { return time.Now().In(loc) }
}

func (s *State) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *State) build(in WorkoutInput) models.Workout {
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	return models.NewWorkout(in.Category, in.Exercise, in.Reps, in.Weight, date)
}

func (s *State) AddWorkout(ctx context.Context, in WorkoutInput) (models.Workout, error) {
	if err := in.Validate(); err != nil {
		return models.Workout{}, err
	}
	w := s.build(in)
	if err := s.Store.Add(ctx, w); err != nil {
		return models.Workout{}, err
	}
	log.WithFields(log.Fields{"id": w.ID, "exercise": w.Exercise}).Info("workout added")
	return w, nil
}

// Ref points at a record either by 1-based position or by id (a unique id prefix is
// enough).
type Ref struct {
	Position int
	ID       string
}

func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, &ValidationError{Field: "reference", Reason: "must not be empty"}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return Ref{}, &ValidationError{Field: "reference", Reason: "positions start at 1"}
		}
		return Ref{Position: n}, nil
	}
	return Ref{ID: s}, nil
}

// resolve returns the 0-based index of ref. Unknown references come back as
// *storage.IndexError.
func (s *State) resolve(ref Ref) (int, error) {
	all := s.Store.All()
	if ref.ID == "" {
		i := ref.Position - 1
		if i < 0 || i >= len(all) {
			return 0, &storage.IndexError{Index: i, Len: len(all)}
		}
		return i, nil
	}

	if i := s.Store.IndexOf(ref.ID); i >= 0 {
		return i, nil
	}
	match := -1
	for i, w := range all {
		if strings.HasPrefix(w.ID, ref.ID) {
			if match >= 0 {
				return 0, &ValidationError{Field: "reference", Reason: fmt.Sprintf("id prefix %q is ambiguous", ref.ID)}
			}
			match = i
		}
	}
	if match < 0 {
		return 0, &storage.IndexError{Index: -1, Len: len(all), ID: ref.ID}
	}
	return match, nil
}

// EditWorkout replaces the referenced record, keeping its id. A zero input date keeps
// the original date.
func (s *State) EditWorkout(ctx context.Context, ref Ref, in WorkoutInput) (models.Workout, error) {
	if err := in.Validate(); err != nil {
		return models.Workout{}, err
	}
	i, err := s.resolve(ref)
	if err != nil {
		return models.Workout{}, err
	}

	old := s.Store.All()[i]
	if in.Date.IsZero() {
		in.Date = old.Date
	}
	w := s.build(in)
	w.ID = old.ID
	if err := s.Store.UpdateAt(ctx, i, w); err != nil {
		return models.Workout{}, err
	}
	log.WithFields(log.Fields{"id": w.ID}).Info("workout updated")
	return w, nil
}

func (s *State) DeleteWorkout(ctx context.Context, ref Ref) (models.Workout, error) {
	i, err := s.resolve(ref)
	if err != nil {
		return models.Workout{}, err
	}
	w := s.Store.All()[i]
	if err := s.Store.RemoveAt(ctx, i); err != nil {
		return models.Workout{}, err
	}
	log.WithFields(log.Fields{"id": w.ID}).Info("workout deleted")
	return w, nil
}

// SetTimeFrame switches the selection. An invalid custom range leaves the previous
// selection in place.
func (s *State) SetTimeFrame(sel stats.Selection) error {
	if sel.Mode == stats.ModeCustom {
		if err := stats.ValidateCustom(sel.Custom); err != nil {
			return &ValidationError{Field: "date range", Reason: err.Error()}
		}
	}
	s.Selection = sel
	return nil
}

func keyFunc(groupBy string) (stats.KeyFunc, error) {
	switch strings.ToLower(groupBy) {
	case "", "exercise":
		return stats.ByExercise, nil
	case "category":
		return stats.ByCategory, nil
	default:
		return nil, &ValidationError{Field: "group-by", Reason: fmt.Sprintf("unknown grouping %q (exercise|category)", groupBy)}
	}
}

// Stats compares the current and previous period for every exercise or category.
func (s *State) Stats(groupBy string) ([]stats.KeyReport, error) {
	fn, err := keyFunc(groupBy)
	if err != nil {
		return nil, err
	}
	return stats.Report(s.Store.All(), s.Selection, s.now(), fn)
}

// Totals aggregates the current period per exercise or category.
func (s *State) Totals(groupBy string) (map[string]stats.Aggregate, error) {
	fn, err := keyFunc(groupBy)
	if err != nil {
		return nil, err
	}
	return stats.Totals(s.Store.All(), s.Selection, s.now(), fn)
}

// ToggleChecklist flips an exercise on the checklist and returns its new state.
func (s *State) ToggleChecklist(ctx context.Context, exercise string) (bool, error) {
	if strings.TrimSpace(exercise) == "" {
		return false, &ValidationError{Field: "exercise", Reason: "must not be empty"}
	}
	return s.Checklist.Toggle(ctx, exercise)
}

// SeedChecklist adds every logged exercise to the checklist, unchecked, without
// touching existing entries.
func (s *State) SeedChecklist(ctx context.Context) (int, error) {
	items := s.Checklist.Items()
	added := 0
	for _, key := range stats.Keys(s.Store.All(), stats.ByExercise) {
		if _, ok := items[key]; !ok {
			items[key] = false
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.Checklist.Replace(ctx, items)
}
