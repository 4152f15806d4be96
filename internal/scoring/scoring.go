// Package scoring turns a filled-in answer set into a total score and an
// interpretation label, using the static scale catalog. Pure functions; the
// caller persists the result.
package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
)

var (
	// ErrUnknownScaleType is returned when the scale identifier is not in
	// the catalog.
	ErrUnknownScaleType = errors.New("unknown scale type")

	// ErrIncompleteResponse is returned when the answer set does not match
	// the scale's item set exactly. A partially answered scale must never
	// be scored.
	ErrIncompleteResponse = errors.New("incomplete response")
)

// Result is the outcome of scoring one answer set.
type Result struct {
	TotalScore     float64 `json:"totalScore"`
	Interpretation string  `json:"interpretation"`
}

// Score sums the selected option values for every item of the scale and
// resolves the interpretation bucket containing the total. The answer set
// must contain exactly one entry per scale item: missing or unexpected item
// IDs fail with ErrIncompleteResponse.
func Score(catalog *models.ScaleCatalog, scaleType string, answers models.AnswerSet) (Result, error) {
	scale, ok := catalog.Get(scaleType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownScaleType, scaleType)
	}

	known := make(map[string]bool, len(scale.Items))
	var missing []string
	total := 0.0
	for _, item := range scale.Items {
		known[item.ID] = true
		value, answered := answers[item.ID]
		if !answered {
			missing = append(missing, item.ID)
			continue
		}
		total += value
	}

	var unexpected []string
	for id := range answers {
		if !known[id] {
			unexpected = append(unexpected, id)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(unexpected)
		switch {
		case len(unexpected) == 0:
			return Result{}, fmt.Errorf("%w: unanswered items %v", ErrIncompleteResponse, missing)
		case len(missing) == 0:
			return Result{}, fmt.Errorf("%w: unexpected items %v", ErrIncompleteResponse, unexpected)
		default:
			return Result{}, fmt.Errorf("%w: unanswered items %v, unexpected items %v", ErrIncompleteResponse, missing, unexpected)
		}
	}

	return Result{
		TotalScore:     total,
		Interpretation: scale.Interpret(total),
	}, nil
}
