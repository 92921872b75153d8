// Package schemas provides JSON Schema validation for structured data
// artifacts exchanged with the LLM.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed customization.schema.json
var customizationSchema []byte

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports schema validation failures with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// ValidateCustomization checks a customization document against the
// embedded schema. The value may be a []byte of JSON or any marshalable
// value. Returns *ValidationError when the document does not conform.
func ValidateCustomization(doc any) error {
	var docLoader gojsonschema.JSONLoader
	switch v := doc.(type) {
	case []byte:
		docLoader = gojsonschema.NewBytesLoader(v)
	case string:
		docLoader = gojsonschema.NewStringLoader(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal document for validation: %w", err)
		}
		docLoader = gojsonschema.NewBytesLoader(data)
	}

	schemaLoader := gojsonschema.NewBytesLoader(customizationSchema)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return verr
	}

	return nil
}
