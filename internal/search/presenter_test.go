package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentNoQuery(t *testing.T) {
	store := loadTestStore(t)
	d := Normalize("", ModeByName)

	p := Present(d, Match(d, store))

	assert.Equal(t, OutcomeNoQuery, p.Outcome)
	assert.Equal(t, "no active search", p.Message)
}

func TestPresentNoRecordFoundNeverClaimsSafe(t *testing.T) {
	store := loadTestStore(t)
	d := Normalize("manzana", ModeByName)

	p := Present(d, Match(d, store))

	require.Equal(t, OutcomeNoRecordFound, p.Outcome)
	assert.Contains(t, p.Message, "no allergy on record")
	assert.NotContains(t, strings.ToLower(p.Message), "is safe")
	assert.Empty(t, p.MustAvoid)
	assert.Empty(t, p.Safe)
}

func TestPresentNoQueryDistinctFromNoRecordFound(t *testing.T) {
	store := loadTestStore(t)

	empty := Normalize("", ModeByName)
	miss := Normalize("manzana", ModeByName)

	pEmpty := Present(empty, Match(empty, store))
	pMiss := Present(miss, Match(miss, store))

	assert.NotEqual(t, pEmpty.Outcome, pMiss.Outcome)
	assert.NotEqual(t, pEmpty.Message, pMiss.Message)
}

func TestPresentAllergyWarning(t *testing.T) {
	store := loadTestStore(t)
	d := Normalize("gamba", ModeByName)

	p := Present(d, Match(d, store))

	assert.Equal(t, OutcomeAllergyWarning, p.Outcome)
	require.Len(t, p.MustAvoid, 1)
	assert.Equal(t, "Gamba", p.MustAvoid[0].Name)
}

func TestPresentCategoryBreakdownKeepsGroupsApart(t *testing.T) {
	store := loadTestStore(t)
	d := Normalize("Crustaceans", ModeByCategory)

	p := Present(d, Match(d, store))

	assert.Equal(t, OutcomeCategoryBreakdown, p.Outcome)
	require.Len(t, p.MustAvoid, 1)
	assert.Equal(t, "Gamba", p.MustAvoid[0].Name)
	require.Len(t, p.Safe, 1)
	assert.Equal(t, "Langosta", p.Safe[0].Name)
}

func TestPresentEmptyCategoryStaysBreakdown(t *testing.T) {
	store := loadTestStore(t)
	d := Normalize("Dairy", ModeByCategory)

	p := Present(d, Match(d, store))

	// unknown category is not an error and not a "no record" claim
	assert.Equal(t, OutcomeCategoryBreakdown, p.Outcome)
	assert.Empty(t, p.MustAvoid)
	assert.Empty(t, p.Safe)
}
