package search

import "fmt"

// Intensity represents the clinical severity tier of a confirmed allergy
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// ParseIntensity converts a stored intensity value into an Intensity
func ParseIntensity(s string) (Intensity, error) {
	switch Intensity(s) {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return Intensity(s), nil
	}
	return "", fmt.Errorf("unknown intensity %q", s)
}

// Valid reports whether the intensity is one of the known tiers
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Record is one known allergen and the patient's clinical relationship to it.
// Intensity is only authoritative when Allergic is true; a safe record still
// carries a value but consumers must ignore it. KUAPerLiter is a specific-IgE
// lab measurement kept for clinical display only, never used for matching.
type Record struct {
	Name        string    `json:"name"`
	Allergic    bool      `json:"is_allergic"`
	Intensity   Intensity `json:"intensity"`
	Category    string    `json:"category"`
	KUAPerLiter *float64  `json:"kua_per_liter,omitempty"`
}
