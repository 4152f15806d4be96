// scale.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScaleOption is one selectable answer for a scale item. The numeric value
// carries the item's weight; the scoring engine only sums values.
type ScaleOption struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// ScaleItem struct to match the YAML structure
type ScaleItem struct {
	ID      string        `yaml:"id" json:"id"`
	Prompt  string        `yaml:"prompt" json:"prompt"`
	Options []ScaleOption `yaml:"options" json:"options"`
}

// ScoreRange maps an inclusive score interval to an interpretation label.
type ScoreRange struct {
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`
	Label string  `yaml:"label" json:"label"`
}

// ScaleDefinition is one standardized clinical scale. Definitions are loaded
// once at startup and never mutated afterwards.
type ScaleDefinition struct {
	ID              string       `yaml:"id" json:"id"`
	Name            string       `yaml:"name" json:"name"`
	Description     string       `yaml:"description" json:"description"`
	Items           []ScaleItem  `yaml:"items" json:"items"`
	MaxScore        float64      `yaml:"max_score" json:"maxScore"`
	Interpretations []ScoreRange `yaml:"interpretations" json:"interpretations"`
}

// ItemCount returns the number of items a complete response must answer.
func (s *ScaleDefinition) ItemCount() int {
	return len(s.Items)
}

// Interpret returns the interpretation label for a score. The ranges are
// validated at load time to partition [0, MaxScore], so every in-range score
// lands in exactly one bucket. Out-of-range scores clamp: anything below
// zero resolves to the lowest bucket and anything above MaxScore to the
// highest, so a label always comes back for a non-empty range table.
func (s *ScaleDefinition) Interpret(score float64) string {
	// Ranges are ascending and contiguous, so the first range whose upper
	// bound covers the score is the right bucket. Fractional scores between
	// two integer bounds resolve upward.
	for _, r := range s.Interpretations {
		if score <= r.Max {
			return r.Label
		}
	}
	if n := len(s.Interpretations); n > 0 {
		return s.Interpretations[n-1].Label
	}
	return ""
}

// Validate checks the structural integrity of a scale definition: items and
// options present, unique item IDs, non-negative option values, declared max
// score matching the highest possible sum, and interpretation ranges forming
// a contiguous, non-overlapping cover of [0, MaxScore].
func (s *ScaleDefinition) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scale has no id")
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("scale %q has no items", s.ID)
	}

	seen := make(map[string]bool, len(s.Items))
	maxSum := 0.0
	for _, item := range s.Items {
		if item.ID == "" {
			return fmt.Errorf("scale %q has an item without an id", s.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("scale %q has duplicate item %q", s.ID, item.ID)
		}
		seen[item.ID] = true

		if len(item.Options) == 0 {
			return fmt.Errorf("scale %q item %q has no options", s.ID, item.ID)
		}
		itemMax := 0.0
		for _, opt := range item.Options {
			if opt.Value < 0 {
				return fmt.Errorf("scale %q item %q has a negative option value", s.ID, item.ID)
			}
			if opt.Value > itemMax {
				itemMax = opt.Value
			}
		}
		maxSum += itemMax
	}

	if s.MaxScore != maxSum {
		return fmt.Errorf("scale %q declares max score %v but items sum to %v", s.ID, s.MaxScore, maxSum)
	}

	if len(s.Interpretations) == 0 {
		return fmt.Errorf("scale %q has no interpretation ranges", s.ID)
	}
	for i, r := range s.Interpretations {
		if r.Max < r.Min {
			return fmt.Errorf("scale %q interpretation %d has max below min", s.ID, i)
		}
		if i == 0 {
			if r.Min != 0 {
				return fmt.Errorf("scale %q interpretation ranges must start at 0, got %v", s.ID, r.Min)
			}
			continue
		}
		prev := s.Interpretations[i-1]
		if r.Min != prev.Max+1 {
			return fmt.Errorf("scale %q interpretation ranges are not contiguous at %v..%v", s.ID, prev.Max, r.Min)
		}
	}
	if last := s.Interpretations[len(s.Interpretations)-1]; last.Max != s.MaxScore {
		return fmt.Errorf("scale %q interpretation ranges end at %v, want %v", s.ID, last.Max, s.MaxScore)
	}

	return nil
}

// ScaleCatalog is the static registry of scale definitions, keyed by scale
// type. Built once at startup; read-only afterwards.
type ScaleCatalog struct {
	scales map[string]*ScaleDefinition
	order  []string
}

// NewScaleCatalog validates every definition and indexes it by ID.
func NewScaleCatalog(defs []ScaleDefinition) (*ScaleCatalog, error) {
	catalog := &ScaleCatalog{scales: make(map[string]*ScaleDefinition, len(defs))}
	for i := range defs {
		def := defs[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := catalog.scales[def.ID]; exists {
			return nil, fmt.Errorf("duplicate scale %q in catalog", def.ID)
		}
		catalog.scales[def.ID] = &def
		catalog.order = append(catalog.order, def.ID)
	}
	return catalog, nil
}

// LoadScaleCatalog reads and parses the scales YAML file.
func LoadScaleCatalog(path string) (*ScaleCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scale catalog file: %w", err)
	}

	var file struct {
		Scales []ScaleDefinition `yaml:"scales"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scale catalog YAML: %w", err)
	}

	return NewScaleCatalog(file.Scales)
}

// Get returns the definition for a scale type.
func (c *ScaleCatalog) Get(scaleType string) (*ScaleDefinition, bool) {
	def, ok := c.scales[scaleType]
	return def, ok
}

// Scales returns all definitions in file order.
func (c *ScaleCatalog) Scales() []*ScaleDefinition {
	out := make([]*ScaleDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.scales[id])
	}
	return out
}
