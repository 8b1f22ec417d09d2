package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvicens/blanca-med/backend/internal/search"
)

func TestRenderCSV(t *testing.T) {
	kua := 24.5
	records := []search.Record{
		{Name: "Gamba", Allergic: true, Intensity: search.IntensityHigh, Category: "Crustaceans", KUAPerLiter: &kua},
		{Name: "Langosta", Allergic: false, Intensity: search.IntensityLow, Category: "Crustaceans"},
	}

	data, err := RenderCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"name", "category", "is_allergic", "intensity", "kua_per_liter"}, rows[0])
	assert.Equal(t, []string{"Gamba", "Crustaceans", "true", "high", "24.5"}, rows[1])
	assert.Equal(t, []string{"Langosta", "Crustaceans", "false", "low", ""}, rows[2])
}

func TestRenderCSVEmptyDataset(t *testing.T) {
	data, err := RenderCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
