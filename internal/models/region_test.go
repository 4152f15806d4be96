package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionMapResolvesPoints(t *testing.T) {
	m, err := NewRegionMap([]AnatomicalRegion{
		{ID: "frontal", Name: "Frontal", Points: []string{"F3", "F4"}},
		{ID: "central", Name: "Central", Points: []string{"C3"}},
	})
	require.NoError(t, err)

	region, ok := m.RegionForPoint("F3")
	require.True(t, ok)
	assert.Equal(t, "frontal", region.ID)

	_, ok = m.RegionForPoint("O1")
	assert.False(t, ok)

	assert.Len(t, m.Regions(), 2)
}

func TestRegionMapRejectsDuplicatePoint(t *testing.T) {
	_, err := NewRegionMap([]AnatomicalRegion{
		{ID: "frontal", Name: "Frontal", Points: []string{"F3"}},
		{ID: "central", Name: "Central", Points: []string{"F3"}},
	})
	assert.Error(t, err)
}

func TestLoadRegionMap(t *testing.T) {
	yaml := `
regions:
  - id: frontal
    name: Frontal
    points: [F3, F4, Fz]
`
	path := filepath.Join(t.TempDir(), "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	m, err := LoadRegionMap(path)
	require.NoError(t, err)

	region, ok := m.RegionForPoint("Fz")
	require.True(t, ok)
	assert.Equal(t, "Frontal", region.Name)
}
