package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/misterclayt0n/liftlog/internal/models"
	log "github.com/sirupsen/logrus"
)

// Checklist is the per-exercise completion map kept in its own slot, independent of
// the workout log.
type Checklist struct {
	slots SlotStore
	items map[string]bool
}

func NewChecklist(slots SlotStore) *Checklist {
	return &Checklist{slots: slots, items: make(map[string]bool)}
}

func (c *Checklist) Load(ctx context.Context) error {
	c.items = make(map[string]bool)

	raw, ok, err := c.slots.Get(ctx, SlotChecklist)
	if err != nil {
		return fmt.Errorf("failed to load checklist: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}

	var items map[string]bool
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn((&PersistedDataError{Slot: SlotChecklist, Err: err}).Error())
		return nil
	}
	for k, v := range items {
		c.items[models.ExerciseKey(k)] = v
	}
	return nil
}

// Items returns a copy of the map.
func (c *Checklist) Items() map[string]bool {
	out := make(map[string]bool, len(c.items))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}

// Keys returns the checklist keys sorted.
func (c *Checklist) Keys() []string {
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Checklist) Done(key string) bool {
	return c.items[models.ExerciseKey(key)]
}

func (c *Checklist) Set(ctx context.Context, key string, done bool) error {
	next := c.Items()
	next[models.ExerciseKey(key)] = done
	return c.commit(ctx, next)
}

// Toggle flips the key and returns its new state.
func (c *Checklist) Toggle(ctx context.Context, key string) (bool, error) {
	done := !c.Done(key)
	if err := c.Set(ctx, key, done); err != nil {
		return !done, err
	}
	return done, nil
}

// Reset unchecks every item but keeps the keys.
func (c *Checklist) Reset(ctx context.Context) error {
	next := make(map[string]bool, len(c.items))
	for k := range c.items {
		next[k] = false
	}
	return c.commit(ctx, next)
}

func (c *Checklist) Replace(ctx context.Context, items map[string]bool) error {
	next := make(map[string]bool, len(items))
	for k, v := range items {
		next[models.ExerciseKey(k)] = v
	}
	return c.commit(ctx, next)
}

func (c *Checklist) commit(ctx context.Context, next map[string]bool) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode checklist: %w", err)
	}
	if err := c.slots.Set(ctx, SlotChecklist, string(data)); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	c.items = next
	return nil
}
