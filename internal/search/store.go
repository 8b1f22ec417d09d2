package search

import (
	"fmt"
	"strings"
)

// DuplicateNameError is returned when two records in a dataset share the
// same case-insensitive name. A duplicate can carry contradictory allergy
// flags, so the whole load is rejected rather than picking a winner.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate allergen name %q in dataset", e.Name)
}

// InvalidRecordError is returned when a record fails field validation at
// load time.
type InvalidRecordError struct {
	Index  int
	Name   string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid allergen record %q at index %d: %s", e.Name, e.Index, e.Reason)
}

// folded holds the pre-computed lower-cased fields a record is matched on
type folded struct {
	name     string
	category string
}

// Store is an immutable snapshot of the allergen dataset. It is built once,
// validated, and never mutated; replacing the dataset means building a new
// Store and swapping the pointer.
type Store struct {
	records    []Record
	folded     []folded
	categories []string
}

// NewStore validates a dataset and builds a snapshot from it. Records keep
// their input order. Names must be unique case-insensitively, non-empty,
// and every record needs a category and a known intensity.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: make([]Record, len(records)),
		folded:  make([]folded, len(records)),
	}
	seen := make(map[string]struct{}, len(records))
	seenCategory := make(map[string]struct{})

	for i, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, &InvalidRecordError{Index: i, Name: r.Name, Reason: "empty name"}
		}
		if strings.TrimSpace(r.Category) == "" {
			return nil, &InvalidRecordError{Index: i, Name: name, Reason: "empty category"}
		}
		if !r.Intensity.Valid() {
			return nil, &InvalidRecordError{Index: i, Name: name, Reason: fmt.Sprintf("unknown intensity %q", r.Intensity)}
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, &DuplicateNameError{Name: name}
		}
		seen[key] = struct{}{}

		r.Name = name
		s.records[i] = r
		s.folded[i] = folded{
			name:     key,
			category: strings.ToLower(strings.TrimSpace(r.Category)),
		}

		if _, ok := seenCategory[s.folded[i].category]; !ok {
			seenCategory[s.folded[i].category] = struct{}{}
			s.categories = append(s.categories, r.Category)
		}
	}

	return s, nil
}

// Len returns the number of records in the snapshot
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the full dataset in insertion order. Exports
// read this, never a filtered result, so a dump is always complete no
// matter what was searched last.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Categories returns the distinct categories in first-seen dataset order
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
