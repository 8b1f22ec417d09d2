package search

import "strings"

// Mode selects which of the two lookup strategies a query uses
type Mode string

const (
	// ModeByName is free-text search over allergen names
	ModeByName Mode = "by_name"
	// ModeByCategory is exact lookup of a category's full partition
	ModeByCategory Mode = "by_category"
)

// Descriptor is a canonicalized query, built once per user interaction
type Descriptor struct {
	Mode Mode   `json:"mode"`
	Text string `json:"text"`
}

// Normalize canonicalizes raw user input into a Descriptor: trimmed and
// lower-cased. Empty input is a valid descriptor meaning "no active query";
// it must produce no results, never the whole dataset.
func Normalize(raw string, mode Mode) Descriptor {
	return Descriptor{
		Mode: mode,
		Text: strings.ToLower(strings.TrimSpace(raw)),
	}
}
