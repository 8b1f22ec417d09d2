package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() []Record {
	kua := func(v float64) *float64 { return &v }
	return []Record{
		{Name: "Gamba", Allergic: true, Intensity: IntensityHigh, Category: "Crustaceans", KUAPerLiter: kua(24.5)},
		{Name: "Langosta", Allergic: false, Intensity: IntensityLow, Category: "Crustaceans"},
		{Name: "Fresa", Allergic: true, Intensity: IntensityMedium, Category: "Fruits", KUAPerLiter: kua(3.2)},
		{Name: "Manzana", Allergic: false, Intensity: IntensityLow, Category: "Fruits"},
		{Name: "Pera", Allergic: false, Intensity: IntensityLow, Category: "Fruits"},
		{Name: "Nuez", Allergic: true, Intensity: IntensityHigh, Category: "Tree nuts", KUAPerLiter: kua(41.0)},
		{Name: "Tomate", Allergic: false, Intensity: IntensityLow, Category: "Vegetables"},
	}
}

func TestNewStoreKeepsInsertionOrder(t *testing.T) {
	store, err := NewStore(testDataset())
	require.NoError(t, err)

	assert.Equal(t, 7, store.Len())
	records := store.Records()
	assert.Equal(t, "Gamba", records[0].Name)
	assert.Equal(t, "Tomate", records[6].Name)
}

func TestNewStoreRejectsDuplicateNames(t *testing.T) {
	records := []Record{
		{Name: "Aguacate", Allergic: true, Intensity: IntensityHigh, Category: "Fruits"},
		{Name: "aguacate", Allergic: false, Intensity: IntensityLow, Category: "Fruits"},
	}

	store, err := NewStore(records)
	assert.Nil(t, store)

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "aguacate", dup.Name)
}

func TestNewStoreRejectsMalformedRecords(t *testing.T) {
	cases := []struct {
		name   string
		record Record
	}{
		{"empty name", Record{Name: "   ", Allergic: true, Intensity: IntensityLow, Category: "Fruits"}},
		{"empty category", Record{Name: "Fresa", Allergic: true, Intensity: IntensityLow, Category: ""}},
		{"unknown intensity", Record{Name: "Fresa", Allergic: true, Intensity: "extreme", Category: "Fruits"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := NewStore([]Record{tc.record})
			assert.Nil(t, store)

			var invalid *InvalidRecordError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestNewStoreTrimsNames(t *testing.T) {
	store, err := NewStore([]Record{
		{Name: "  Fresa  ", Allergic: true, Intensity: IntensityHigh, Category: "Fruits"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresa", store.Records()[0].Name)
}

func TestRecordsReturnsACopy(t *testing.T) {
	store, err := NewStore(testDataset())
	require.NoError(t, err)

	records := store.Records()
	records[0].Name = "mutated"

	assert.Equal(t, "Gamba", store.Records()[0].Name)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	store, err := NewStore(testDataset())
	require.NoError(t, err)

	assert.Equal(t, []string{"Crustaceans", "Fruits", "Tree nuts", "Vegetables"}, store.Categories())
}

func TestParseIntensity(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high"} {
		got, err := ParseIntensity(valid)
		assert.NoError(t, err)
		assert.True(t, got.Valid())
	}

	_, err := ParseIntensity("severe")
	assert.Error(t, err)
}
