package analytics

import (
	"testing"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(scores ...float64) []models.ScaleResponse {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	responses := make([]models.ScaleResponse, len(scores))
	for i, score := range scores {
		responses[i] = models.ScaleResponse{
			ScaleType:      "doss",
			AssessmentDate: base.AddDate(0, 0, 7*i),
			TotalScore:     score,
		}
	}
	return responses
}

func TestStatisticsEmptySeries(t *testing.T) {
	_, err := Statistics(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestStatisticsSingleResponse(t *testing.T) {
	stats, err := Statistics(series(4))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 4.0, stats.Average)
	assert.Equal(t, 4.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.Equal(t, TrendStable, stats.Trend)
}

func TestStatisticsSummaryValues(t *testing.T) {
	stats, err := Statistics(series(2, 5, 3, 6))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 4.0, stats.Average)
	assert.Equal(t, 2.0, stats.Min)
	assert.Equal(t, 6.0, stats.Max)
}

func TestTrendImproving(t *testing.T) {
	stats, err := Statistics(series(2, 5))
	require.NoError(t, err)
	assert.Equal(t, TrendImproving, stats.Trend)
}

func TestTrendDeclining(t *testing.T) {
	stats, err := Statistics(series(5, 2))
	require.NoError(t, err)
	assert.Equal(t, TrendDeclining, stats.Trend)
}

func TestTrendStableOnEqualEndpoints(t *testing.T) {
	stats, err := Statistics(series(4, 6, 4))
	require.NoError(t, err)
	assert.Equal(t, TrendStable, stats.Trend)
}

// The classification compares first and last scores only; intermediate
// fluctuation is ignored on purpose.
func TestTrendIgnoresIntermediateFluctuation(t *testing.T) {
	stats, err := Statistics(series(3, 7, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, TrendImproving, stats.Trend)
}

func TestStatisticsIsDeterministic(t *testing.T) {
	input := series(2, 5, 3)

	first, err := Statistics(input)
	require.NoError(t, err)
	second, err := Statistics(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
