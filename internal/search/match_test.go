package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(testDataset())
	require.NoError(t, err)
	return store
}

func TestMatchByNameFindsAllergicSubstring(t *testing.T) {
	store := loadTestStore(t)

	result := Match(Normalize("fres", ModeByName), store)

	require.Len(t, result.AllergicMatches, 1)
	assert.Equal(t, "Fresa", result.AllergicMatches[0].Name)
	assert.Empty(t, result.SafeMatches)
	assert.False(t, result.IsEmpty())
}

func TestMatchByNameNeverReturnsSafeRecords(t *testing.T) {
	store := loadTestStore(t)

	// "a" is a substring of every name in the dataset; only the allergic
	// ones may come back
	result := Match(Normalize("a", ModeByName), store)

	assert.Empty(t, result.SafeMatches)
	for _, rec := range result.AllergicMatches {
		assert.True(t, rec.Allergic)
	}
}

func TestMatchByNameCaseInsensitive(t *testing.T) {
	store := loadTestStore(t)

	lower := Match(Normalize("fresa", ModeByName), store)
	upper := Match(Normalize("FRESA", ModeByName), store)
	mixed := Match(Normalize("  FrEsA  ", ModeByName), store)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	require.Len(t, lower.AllergicMatches, 1)
	assert.Equal(t, "Fresa", lower.AllergicMatches[0].Name)
}

func TestMatchByNameNoMatchIsEmptyNotSafe(t *testing.T) {
	store := loadTestStore(t)

	// "Manzana" exists but is a safe record; a name search must not
	// surface it
	result := Match(Normalize("manzana", ModeByName), store)

	assert.True(t, result.IsEmpty())
	assert.Empty(t, result.AllergicMatches)
	assert.Empty(t, result.SafeMatches)
}

func TestMatchEmptyQueryMatchesNothing(t *testing.T) {
	store := loadTestStore(t)

	for _, raw := range []string{"", "   ", "\t\n"} {
		for _, mode := range []Mode{ModeByName, ModeByCategory} {
			result := Match(Normalize(raw, mode), store)
			assert.True(t, result.IsEmpty(), "raw=%q mode=%s", raw, mode)
		}
	}
}

func TestMatchByCategoryPartitionsCompletely(t *testing.T) {
	store := loadTestStore(t)

	result := Match(Normalize("Fruits", ModeByCategory), store)

	require.Len(t, result.AllergicMatches, 1)
	assert.Equal(t, "Fresa", result.AllergicMatches[0].Name)

	require.Len(t, result.SafeMatches, 2)
	assert.Equal(t, "Manzana", result.SafeMatches[0].Name)
	assert.Equal(t, "Pera", result.SafeMatches[1].Name)

	// every record of the category lands in exactly one group
	total := len(result.AllergicMatches) + len(result.SafeMatches)
	count := 0
	for _, rec := range store.Records() {
		if rec.Category == "Fruits" {
			count++
		}
	}
	assert.Equal(t, count, total)
}

func TestMatchByCategoryExactNotSubstring(t *testing.T) {
	store := loadTestStore(t)

	result := Match(Normalize("Fruit", ModeByCategory), store)
	assert.True(t, result.IsEmpty())
}

func TestMatchByCategoryUnknownCategoryIsEmpty(t *testing.T) {
	store := loadTestStore(t)

	result := Match(Normalize("Dairy", ModeByCategory), store)
	assert.True(t, result.IsEmpty())
	assert.NotNil(t, result.AllergicMatches)
	assert.NotNil(t, result.SafeMatches)
}

func TestMatchCrustaceansScenario(t *testing.T) {
	store := loadTestStore(t)

	result := Match(Normalize("crustaceans", ModeByCategory), store)

	require.Len(t, result.AllergicMatches, 1)
	assert.Equal(t, "Gamba", result.AllergicMatches[0].Name)
	require.Len(t, result.SafeMatches, 1)
	assert.Equal(t, "Langosta", result.SafeMatches[0].Name)
}

func TestMatchIsDeterministic(t *testing.T) {
	store := loadTestStore(t)

	for _, d := range []Descriptor{
		Normalize("a", ModeByName),
		Normalize("Fruits", ModeByCategory),
		Normalize("", ModeByName),
	} {
		first := Match(d, store)
		second := Match(d, store)
		assert.Equal(t, first, second)
	}
}

func TestMatchPreservesInsertionOrder(t *testing.T) {
	store, err := NewStore([]Record{
		{Name: "Nuez", Allergic: true, Intensity: IntensityHigh, Category: "Tree nuts"},
		{Name: "Almendra", Allergic: true, Intensity: IntensityLow, Category: "Tree nuts"},
		{Name: "Castana", Allergic: true, Intensity: IntensityMedium, Category: "Tree nuts"},
	})
	require.NoError(t, err)

	// not re-sorted by name or severity
	result := Match(Normalize("tree nuts", ModeByCategory), store)
	require.Len(t, result.AllergicMatches, 3)
	assert.Equal(t, "Nuez", result.AllergicMatches[0].Name)
	assert.Equal(t, "Almendra", result.AllergicMatches[1].Name)
	assert.Equal(t, "Castana", result.AllergicMatches[2].Name)
}

func TestNormalize(t *testing.T) {
	d := Normalize("  Fresa Silvestre  ", ModeByName)
	assert.Equal(t, ModeByName, d.Mode)
	assert.Equal(t, "fresa silvestre", d.Text)

	d = Normalize("\tCrustaceans\n", ModeByCategory)
	assert.Equal(t, ModeByCategory, d.Mode)
	assert.Equal(t, "crustaceans", d.Text)
}
