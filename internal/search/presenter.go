package search

import "fmt"

// Outcome tells the rendering layer which display branch to take
type Outcome string

const (
	// OutcomeNoQuery means no search was performed (empty input)
	OutcomeNoQuery Outcome = "no_query"
	// OutcomeNoRecordFound means a name search matched nothing. Absence of
	// a record is not clinical proof of safety, so this must never be
	// rendered as "confirmed safe".
	OutcomeNoRecordFound Outcome = "no_record_found"
	// OutcomeAllergyWarning means a name search matched known allergens
	OutcomeAllergyWarning Outcome = "allergy_warning"
	// OutcomeCategoryBreakdown means a category lookup; must-avoid and
	// safe groups are rendered as two distinct lists, never merged
	OutcomeCategoryBreakdown Outcome = "category_breakdown"
)

// Presentation is the contract handed to the rendering layer
type Presentation struct {
	Outcome   Outcome  `json:"outcome"`
	Message   string   `json:"message"`
	MustAvoid []Record `json:"must_avoid"`
	Safe      []Record `json:"safe"`
}

// Present classifies a match result into the display contract. The
// wording of the zero-match name outcome deliberately says "no allergy on
// record" rather than anything implying safety.
func Present(d Descriptor, r Result) Presentation {
	p := Presentation{
		MustAvoid: r.AllergicMatches,
		Safe:      r.SafeMatches,
	}

	switch d.Mode {
	case ModeByCategory:
		p.Outcome = OutcomeCategoryBreakdown
		p.Message = fmt.Sprintf("%d to avoid and %d safe in category %q", len(r.AllergicMatches), len(r.SafeMatches), d.Text)
	default:
		if d.Text == "" {
			p.Outcome = OutcomeNoQuery
			p.Message = "no active search"
		} else if len(r.AllergicMatches) == 0 {
			p.Outcome = OutcomeNoRecordFound
			p.Message = fmt.Sprintf("no allergy on record for %q; this is not a confirmation of safety", d.Text)
		} else {
			p.Outcome = OutcomeAllergyWarning
			p.Message = fmt.Sprintf("%d known allergen(s) match %q", len(r.AllergicMatches), d.Text)
		}
	}

	return p
}
