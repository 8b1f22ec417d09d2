package search

import "strings"

// Result is the outcome of applying a Descriptor to a Store.
//
// In ModeByName only AllergicMatches is populated: a name search asks "is
// the patient allergic to this?", and safe entries are noise there. In
// ModeByCategory both groups are populated by partitioning every record of
// the category on its own allergy flag; category membership alone implies
// nothing. Both sequences preserve dataset insertion order.
type Result struct {
	Mode            Mode     `json:"mode"`
	AllergicMatches []Record `json:"allergic_matches"`
	SafeMatches     []Record `json:"safe_matches"`
}

// IsEmpty reports whether the query matched nothing
func (r Result) IsEmpty() bool {
	return len(r.AllergicMatches) == 0 && len(r.SafeMatches) == 0
}

// Match applies a normalized query to a dataset snapshot. It is a pure
// function of its inputs: no internal state, identical inputs yield
// identical results, and it never fails on a validly loaded store. An
// empty query text or an unknown category both yield an empty Result.
func Match(d Descriptor, s *Store) Result {
	r := Result{
		Mode:            d.Mode,
		AllergicMatches: []Record{},
		SafeMatches:     []Record{},
	}
	if d.Text == "" {
		return r
	}

	switch d.Mode {
	case ModeByName:
		for i, rec := range s.records {
			if rec.Allergic && strings.Contains(s.folded[i].name, d.Text) {
				r.AllergicMatches = append(r.AllergicMatches, rec)
			}
		}
	case ModeByCategory:
		for i, rec := range s.records {
			if s.folded[i].category != d.Text {
				continue
			}
			if rec.Allergic {
				r.AllergicMatches = append(r.AllergicMatches, rec)
			} else {
				r.SafeMatches = append(r.SafeMatches, rec)
			}
		}
	}

	return r
}
