package scoring

import (
	"testing"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *models.ScaleCatalog {
	t.Helper()
	catalog, err := models.NewScaleCatalog([]models.ScaleDefinition{
		{
			ID:   "doss",
			Name: "DOSS",
			Items: []models.ScaleItem{
				{
					ID:     "doss_level",
					Prompt: "Functional level",
					Options: []models.ScaleOption{
						{Label: "Level 1", Value: 1},
						{Label: "Level 4", Value: 4},
						{Label: "Level 7", Value: 7},
					},
				},
			},
			MaxScore: 7,
			Interpretations: []models.ScoreRange{
				{Min: 0, Max: 1, Label: "Severe dysphagia: nonoral nutrition required"},
				{Min: 2, Max: 5, Label: "Modified diet"},
				{Min: 6, Max: 7, Label: "Normal diet: full oral nutrition"},
			},
		},
		{
			ID:   "swal3",
			Name: "Three item screener",
			Items: []models.ScaleItem{
				{ID: "q1", Prompt: "Q1", Options: []models.ScaleOption{{Label: "No", Value: 0}, {Label: "Yes", Value: 2}}},
				{ID: "q2", Prompt: "Q2", Options: []models.ScaleOption{{Label: "No", Value: 0}, {Label: "Yes", Value: 2}}},
				{ID: "q3", Prompt: "Q3", Options: []models.ScaleOption{{Label: "No", Value: 0}, {Label: "Yes", Value: 2}}},
			},
			MaxScore: 6,
			Interpretations: []models.ScoreRange{
				{Min: 0, Max: 2, Label: "Low risk"},
				{Min: 3, Max: 6, Label: "High risk"},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestScoreSumsOptionValues(t *testing.T) {
	catalog := testCatalog(t)

	result, err := Score(catalog, "swal3", models.AnswerSet{"q1": 2, "q2": 0, "q3": 2})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.TotalScore)
	assert.Equal(t, "High risk", result.Interpretation)
}

func TestScoreStaysWithinScaleBounds(t *testing.T) {
	catalog := testCatalog(t)
	scale, ok := catalog.Get("swal3")
	require.True(t, ok)

	answerSets := []models.AnswerSet{
		{"q1": 0, "q2": 0, "q3": 0},
		{"q1": 2, "q2": 0, "q3": 0},
		{"q1": 2, "q2": 2, "q3": 2},
	}
	for _, answers := range answerSets {
		result, err := Score(catalog, "swal3", answers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.TotalScore, 0.0)
		assert.LessOrEqual(t, result.TotalScore, scale.MaxScore)
	}
}

func TestScoreTopTierInterpretation(t *testing.T) {
	catalog := testCatalog(t)

	result, err := Score(catalog, "doss", models.AnswerSet{"doss_level": 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, result.TotalScore)
	assert.Equal(t, "Normal diet: full oral nutrition", result.Interpretation)
}

func TestScoreUnknownScaleType(t *testing.T) {
	catalog := testCatalog(t)

	_, err := Score(catalog, "grbas", models.AnswerSet{"doss_level": 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScaleType)
}

func TestScoreRejectsMissingItems(t *testing.T) {
	catalog := testCatalog(t)

	_, err := Score(catalog, "swal3", models.AnswerSet{"q1": 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
	assert.Contains(t, err.Error(), "q2")
	assert.Contains(t, err.Error(), "q3")
}

func TestScoreRejectsUnexpectedItems(t *testing.T) {
	catalog := testCatalog(t)

	_, err := Score(catalog, "swal3", models.AnswerSet{"q1": 2, "q2": 0, "q3": 2, "q9": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
	assert.Contains(t, err.Error(), "q9")
}

func TestScoreRejectsEmptyAnswerSet(t *testing.T) {
	catalog := testCatalog(t)

	_, err := Score(catalog, "doss", models.AnswerSet{})
	assert.ErrorIs(t, err, ErrIncompleteResponse)
}

func TestScoreIsDeterministic(t *testing.T) {
	catalog := testCatalog(t)
	answers := models.AnswerSet{"q1": 2, "q2": 2, "q3": 0}

	first, err := Score(catalog, "swal3", answers)
	require.NoError(t, err)
	second, err := Score(catalog, "swal3", answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
