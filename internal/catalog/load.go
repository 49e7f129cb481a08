package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/types"
)

// LoadCatalog loads a remedy/symptom catalog from a JSON file
func LoadCatalog(path string) (*types.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return ParseCatalog(content)
}

// ParseCatalog decodes a catalog from JSON bytes
func ParseCatalog(content []byte) (*types.Catalog, error) {
	var catalog types.Catalog
	if err := json.Unmarshal(content, &catalog); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &catalog, nil
}

// LoadSelection loads a user selection from a JSON file
func LoadSelection(path string) (*types.Selection, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var selection types.Selection
	if err := json.Unmarshal(content, &selection); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &selection, nil
}
