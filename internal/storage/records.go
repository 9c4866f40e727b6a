package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/liftlog/internal/models"
	log "github.com/sirupsen/logrus"
)

// RecordStore is the ordered workout log, mirrored to the workouts slot after every
// mutation.
type RecordStore struct {
	slots    SlotStore
	workouts []models.Workout
}

// persistedWorkout is the on-disk shape. Dates are kept as strings so legacy values
// written in other formats can still be read.
type persistedWorkout struct {
	ID       string  `json:"id,omitempty"`
	Category string  `json:"category"`
	Exercise string  `json:"exercise"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Date     string  `json:"date"`
}

const dateLayout = "2006-01-02T15:04:05.000Z07:00"

func NewRecordStore(slots SlotStore) *RecordStore {
	return &RecordStore{slots: slots}
}

// Load reads the workouts slot. A missing or malformed slot leaves the store empty;
// the decode failure is logged, never returned. Only a failing backend is an error.
func (s *RecordStore) Load(ctx context.Context) error {
	s.workouts = nil

	raw, ok, err := s.slots.Get(ctx, SlotWorkouts)
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}

	workouts, err := decodeWorkouts(raw)
	if err != nil {
		log.Warn((&PersistedDataError{Slot: SlotWorkouts, Err: err}).Error())
		return nil
	}
	s.workouts = workouts
	return nil
}

func decodeWorkouts(raw string) ([]models.Workout, error) {
	var persisted []persistedWorkout
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0, len(persisted))
	for i, p := range persisted {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		id := p.ID
		if id == "" {
			// Entries written before ids existed.
			id = uuid.New().String()
		}
		workouts = append(workouts, models.Workout{
			ID:       id,
			Category: models.NormalizeCategory(p.Category),
			Exercise: p.Exercise,
			Reps:     p.Reps,
			Weight:   p.Weight,
			Date:     date,
		})
	}
	return workouts, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func encodeWorkouts(workouts []models.Workout) (string, error) {
	persisted := make([]persistedWorkout, 0, len(workouts))
	for _, w := range workouts {
		persisted = append(persisted, persistedWorkout{
			ID:       w.ID,
			Category: w.Category,
			Exercise: w.Exercise,
			Reps:     w.Reps,
			Weight:   w.Weight,
			Date:     w.Date.UTC().Format(dateLayout),
		})
	}
	data, err := json.Marshal(persisted)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// All returns a copy of the log in entry order.
func (s *RecordStore) All() []models.Workout {
	out := make([]models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

func (s *RecordStore) Len() int {
	return len(s.workouts)
}

func (s *RecordStore) Add(ctx context.Context, w models.Workout) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return s.commit(ctx, append(s.All(), w))
}

func (s *RecordStore) UpdateAt(ctx context.Context, index int, w models.Workout) error {
	if index < 0 || index >= len(s.workouts) {
		return &IndexError{Index: index, Len: len(s.workouts)}
	}
	next := s.All()
	if w.ID == "" {
		w.ID = next[index].ID
	}
	next[index] = w
	return s.commit(ctx, next)
}

func (s *RecordStore) RemoveAt(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.workouts) {
		return &IndexError{Index: index, Len: len(s.workouts)}
	}
	next := s.All()
	next = append(next[:index], next[index+1:]...)
	return s.commit(ctx, next)
}

// IndexOf returns the position of the record with the given id, or -1.
func (s *RecordStore) IndexOf(id string) int {
	for i, w := range s.workouts {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *RecordStore) Update(ctx context.Context, id string, w models.Workout) error {
	i := s.IndexOf(id)
	if i < 0 {
		return &IndexError{Index: -1, Len: len(s.workouts), ID: id}
	}
	w.ID = id
	return s.UpdateAt(ctx, i, w)
}

func (s *RecordStore) Remove(ctx context.Context, id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return &IndexError{Index: -1, Len: len(s.workouts), ID: id}
	}
	return s.RemoveAt(ctx, i)
}

// Replace overwrites the whole log, used by imports.
func (s *RecordStore) Replace(ctx context.Context, workouts []models.Workout) error {
	next := make([]models.Workout, len(workouts))
	copy(next, workouts)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.New().String()
		}
	}
	return s.commit(ctx, next)
}

// commit persists next and only then makes it the in-memory state, so a failed write
// leaves the last good log in place.
func (s *RecordStore) commit(ctx context.Context, next []models.Workout) error {
	raw, err := encodeWorkouts(next)
	if err != nil {
		return fmt.Errorf("failed to encode workouts: %w", err)
	}
	if err := s.slots.Set(ctx, SlotWorkouts, raw); err != nil {
		return fmt.Errorf("failed to save workouts: %w", err)
	}
	s.workouts = next
	log.Debugf("persisted %d workouts", len(next))
	return nil
}
