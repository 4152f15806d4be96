package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScale() ScaleDefinition {
	return ScaleDefinition{
		ID:   "doss",
		Name: "DOSS",
		Items: []ScaleItem{
			{
				ID:     "doss_level",
				Prompt: "Functional level",
				Options: []ScaleOption{
					{Label: "Level 1", Value: 1},
					{Label: "Level 7", Value: 7},
				},
			},
		},
		MaxScore: 7,
		Interpretations: []ScoreRange{
			{Min: 0, Max: 3, Label: "Dysphagia"},
			{Min: 4, Max: 7, Label: "Functional"},
		},
	}
}

func TestScaleValidateAccepts(t *testing.T) {
	scale := validScale()
	assert.NoError(t, scale.Validate())
}

func TestScaleValidateRejectsGapInRanges(t *testing.T) {
	scale := validScale()
	scale.Interpretations = []ScoreRange{
		{Min: 0, Max: 2, Label: "Low"},
		{Min: 4, Max: 7, Label: "High"}, // gap at 3
	}
	assert.Error(t, scale.Validate())
}

func TestScaleValidateRejectsOverlappingRanges(t *testing.T) {
	scale := validScale()
	scale.Interpretations = []ScoreRange{
		{Min: 0, Max: 4, Label: "Low"},
		{Min: 4, Max: 7, Label: "High"},
	}
	assert.Error(t, scale.Validate())
}

func TestScaleValidateRejectsShortCover(t *testing.T) {
	scale := validScale()
	scale.Interpretations = []ScoreRange{
		{Min: 0, Max: 5, Label: "Low"},
	}
	assert.Error(t, scale.Validate())
}

func TestScaleValidateRejectsMaxScoreMismatch(t *testing.T) {
	scale := validScale()
	scale.MaxScore = 10
	assert.Error(t, scale.Validate())
}

func TestScaleValidateRejectsDuplicateItems(t *testing.T) {
	scale := validScale()
	scale.Items = append(scale.Items, scale.Items[0])
	assert.Error(t, scale.Validate())
}

func TestInterpretSelectsContainingRange(t *testing.T) {
	scale := validScale()

	assert.Equal(t, "Dysphagia", scale.Interpret(0))
	assert.Equal(t, "Dysphagia", scale.Interpret(3))
	assert.Equal(t, "Functional", scale.Interpret(4))
	assert.Equal(t, "Functional", scale.Interpret(7))
}

func TestInterpretClampsOutOfRangeScores(t *testing.T) {
	scale := validScale()

	assert.Equal(t, "Dysphagia", scale.Interpret(-1))
	assert.Equal(t, "Functional", scale.Interpret(99))
}

func TestNewScaleCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewScaleCatalog([]ScaleDefinition{validScale(), validScale()})
	assert.Error(t, err)
}

func TestLoadScaleCatalog(t *testing.T) {
	yaml := `
scales:
  - id: fois
    name: FOIS
    max_score: 7
    items:
      - id: fois_level
        prompt: Oral intake level
        options:
          - { label: "Level 1", value: 1 }
          - { label: "Level 7", value: 7 }
    interpretations:
      - { min: 0, max: 3, label: "Tube dependent" }
      - { min: 4, max: 7, label: "Oral diet" }
`
	path := filepath.Join(t.TempDir(), "scales.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	catalog, err := LoadScaleCatalog(path)
	require.NoError(t, err)

	scale, ok := catalog.Get("fois")
	require.True(t, ok)
	assert.Equal(t, "FOIS", scale.Name)
	assert.Equal(t, 1, scale.ItemCount())
	assert.Len(t, catalog.Scales(), 1)

	_, ok = catalog.Get("doss")
	assert.False(t, ok)
}

func TestLoadScaleCatalogMissingFile(t *testing.T) {
	_, err := LoadScaleCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
