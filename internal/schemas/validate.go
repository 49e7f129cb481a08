// Package schemas provides JSON Schema validation functionality for catalogs, selections and result artifacts.
package schemas

import (
	"fmt"
	"os"
	"strings"

	schemafiles "github.com/jonathan/bachflower-advisor/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation against %s failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// schemaLoader returns a loader for an embedded schema by file name
func schemaLoader(name string) (gojsonschema.JSONLoader, error) {
	content, err := schemafiles.Files.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "schema not embedded",
			Cause:   err,
		}
	}
	return gojsonschema.NewBytesLoader(content), nil
}

// ValidateDocument validates raw JSON content against an embedded schema
func ValidateDocument(schemaName string, content []byte) error {
	loader, err := schemaLoader(schemaName)
	if err != nil {
		return err
	}
	return validate(schemaName, loader, gojsonschema.NewBytesLoader(content))
}

// ValidateFile validates a JSON file against an embedded schema
func ValidateFile(schemaName, jsonPath string) error {
	content, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}
	return ValidateDocument(schemaName, content)
}

// ValidateValue validates a Go value (as it would be marshalled to JSON) against an embedded schema
func ValidateValue(schemaName string, value any) error {
	loader, err := schemaLoader(schemaName)
	if err != nil {
		return err
	}
	return validate(schemaName, loader, gojsonschema.NewGoLoader(value))
}

func validate(schemaName string, schema, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: schemaName,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
