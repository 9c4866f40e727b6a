package storage

import "fmt"

// IndexError reports a stale or out-of-range record reference. The store is left
// untouched when it is returned.
type IndexError struct {
	Index int
	Len   int
	ID    string
}

func (e *IndexError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("no workout with id %s", e.ID)
	}
	return fmt.Sprintf("workout index %d out of range [0, %d)", e.Index, e.Len)
}

// PersistedDataError reports a slot whose stored value could not be decoded.
// Loaders recover from it by treating the slot as empty.
type PersistedDataError struct {
	Slot string
	Err  error
}

func (e *PersistedDataError) Error() string {
	return fmt.Sprintf("malformed data in slot %s: %s", e.Slot, e.Err)
}

func (e *PersistedDataError) Unwrap() error {
	return e.Err
}
