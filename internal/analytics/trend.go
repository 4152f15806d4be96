// Package analytics computes longitudinal statistics over a patient's scored
// responses and cross-patient effectiveness aggregates. Every function is a
// pure transformation over collections already loaded in memory.
package analytics

import (
	"errors"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
)

// Trend is the three-way classification of a score history.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// ErrEmptySeries is returned when statistics are requested for a patient
// with no recorded responses for the scale.
var ErrEmptySeries = errors.New("empty response series")

// SeriesStatistics summarizes one (patient, scale) response series.
type SeriesStatistics struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   Trend   `json:"trend"`
}

// Statistics summarizes a response series that the caller has already sorted
// ascending by assessment date. Ordering is the caller's contract; the
// series is not re-sorted here.
func Statistics(responses []models.ScaleResponse) (SeriesStatistics, error) {
	if len(responses) == 0 {
		return SeriesStatistics{}, ErrEmptySeries
	}

	stats := SeriesStatistics{
		Count: len(responses),
		Min:   responses[0].TotalScore,
		Max:   responses[0].TotalScore,
	}
	sum := 0.0
	for _, r := range responses {
		sum += r.TotalScore
		if r.TotalScore < stats.Min {
			stats.Min = r.TotalScore
		}
		if r.TotalScore > stats.Max {
			stats.Max = r.TotalScore
		}
	}
	stats.Average = sum / float64(len(responses))
	stats.Trend = classifyTrend(responses)

	return stats, nil
}

// classifyTrend compares the most recent score to the first one. This is a
// deliberate two-point heuristic that ignores intermediate fluctuation; it
// is isolated here so a slope-based classifier could replace it without
// touching callers.
func classifyTrend(responses []models.ScaleResponse) Trend {
	if len(responses) < 2 {
		return TrendStable
	}
	first := responses[0].TotalScore
	last := responses[len(responses)-1].TotalScore
	switch {
	case last > first:
		return TrendImproving
	case last < first:
		return TrendDeclining
	default:
		return TrendStable
	}
}
