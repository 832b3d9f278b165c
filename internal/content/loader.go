package content

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Catalog is the on-disk shape of the project catalog.
type Catalog struct {
	Records []Record `yaml:"records"`
}

// LoadCatalog reads and validates the YAML catalog at path. Record
// order is preserved; it determines tree insertion order.
func LoadCatalog(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates raw catalog YAML.
func ParseCatalog(data []byte) ([]Record, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Records))
	for i, rec := range catalog.Records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if rec.Title == "" {
			return nil, fmt.Errorf("record %q: missing title", rec.ID)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("record %q: duplicate id", rec.ID)
		}
		seen[rec.ID] = true
	}
	return catalog.Records, nil
}
