// region.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnatomicalRegion groups 10-20 electrode point codes under one cortical
// region for effectiveness aggregation.
type AnatomicalRegion struct {
	ID     string   `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	Points []string `yaml:"points" json:"points"`
}

// RegionMap is the static point-to-region reference table. A point code
// belongs to exactly one region; loaded once at startup, read-only after.
type RegionMap struct {
	regions []AnatomicalRegion
	byPoint map[string]*AnatomicalRegion
}

// NewRegionMap indexes the regions by point code, rejecting points claimed
// by more than one region.
func NewRegionMap(regions []AnatomicalRegion) (*RegionMap, error) {
	m := &RegionMap{
		regions: regions,
		byPoint: make(map[string]*AnatomicalRegion),
	}
	for i := range regions {
		region := &m.regions[i]
		if region.ID == "" {
			return nil, fmt.Errorf("region has no id")
		}
		for _, point := range region.Points {
			if other, exists := m.byPoint[point]; exists {
				return nil, fmt.Errorf("point %q mapped to both %q and %q", point, other.ID, region.ID)
			}
			m.byPoint[point] = region
		}
	}
	return m, nil
}

// LoadRegionMap reads and parses the regions YAML file.
func LoadRegionMap(path string) (*RegionMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read region map file: %w", err)
	}

	var file struct {
		Regions []AnatomicalRegion `yaml:"regions"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal region map YAML: %w", err)
	}

	return NewRegionMap(file.Regions)
}

// RegionForPoint resolves the owning region of an electrode point code.
func (m *RegionMap) RegionForPoint(point string) (*AnatomicalRegion, bool) {
	region, ok := m.byPoint[point]
	return region, ok
}

// Regions returns all regions in file order.
func (m *RegionMap) Regions() []AnatomicalRegion {
	return m.regions
}
