// Package contract enforces the declared shape of LLM structured output.
// The generator's schema compliance is best-effort, so every reply is
// re-validated here before any field is trusted.
package contract

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field-level failure of one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, e := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", e.Field, e.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Schema is a compiled JSON Schema contract, built once at startup and
// reused read-only across requests.
type Schema struct {
	compiled *gojsonschema.Schema
}

// MustCompile compiles a JSON Schema document and panics on error.
// Contracts are package-level constants, so a failure here is a programming
// error caught at process start.
func MustCompile(schemaJSON string) *Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("contract: compile schema: %v", err))
	}
	return &Schema{compiled: compiled}
}

// Validate checks a raw JSON document against the contract.
// Returns *ValidationError when the document parses but violates the schema.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("contract: invalid JSON document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
