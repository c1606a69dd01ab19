// Package ledger holds the ordered list of weight entries and its
// line-oriented text format.
package ledger

import (
	"time"

	"github.com/theirongolddev/wtrack/internal/model"
)

// Store is an ordered collection of entries kept in insertion/file order.
// It does not enforce one entry per date; callers check with Find first.
type Store struct {
	entries []model.Entry
}

// New returns a store holding the given entries in order.
func New(entries ...model.Entry) *Store {
	s := &Store{}
	s.entries = append(s.entries, entries...)
	return s
}

// Add appends an entry to the end of the ledger.
func (s *Store) Add(e model.Entry) {
	s.entries = append(s.entries, e)
}

// Find returns the first entry for date.
func (s *Store) Find(date time.Time) (model.Entry, bool) {
	if i := s.index(date); i >= 0 {
		return s.entries[i], true
	}
	return model.Entry{}, false
}

// Update replaces the entry for date in place with a new weight.
// It reports false when no entry matched.
func (s *Store) Update(date time.Time, weight float64) bool {
	i := s.index(date)
	if i < 0 {
		return false
	}
	s.entries[i] = model.NewEntry(date, weight)
	return true
}

// Delete removes every entry for date and returns how many were removed.
func (s *Store) Delete(date time.Time) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.SameDay(date) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// clear the tail so dropped entries don't linger in the backing array
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = model.Entry{}
	}
	s.entries = kept
	return removed
}

// List returns a copy of the entries in current order.
func (s *Store) List() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// First returns the first entry in ledger order.
func (s *Store) First() (model.Entry, bool) {
	if len(s.entries) == 0 {
		return model.Entry{}, false
	}
	return s.entries[0], true
}

// Last returns the last entry in ledger order.
func (s *Store) Last() (model.Entry, bool) {
	if len(s.entries) == 0 {
		return model.Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Weights returns the weights in ledger order.
func (s *Store) Weights() []float64 {
	out := make([]float64, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Weight
	}
	return out
}

func (s *Store) index(date time.Time) int {
	for i, e := range s.entries {
		if e.SameDay(date) {
			return i
		}
	}
	return -1
}
