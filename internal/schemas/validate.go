// Package schemas provides JSON Schema validation for records received from the backend API.
package schemas

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	rootschemas "github.com/selamsoft/selam-web/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Kind names a record schema.
type Kind string

const (
	KindJob     Kind = "job"
	KindProduct Kind = "product"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
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
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Summary returns the first problem on one line, for log output.
func (ve *ValidationError) Summary() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	first := ve.Errors[0]
	if len(ve.Errors) == 1 {
		return fmt.Sprintf("%s: %s", first.Field, first.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", first.Field, first.Message, len(ve.Errors)-1)
}

var (
	compiledMu sync.Mutex
	compiled   = map[Kind]*gojsonschema.Schema{}
)

// load compiles the embedded schema for kind once and caches it.
func load(kind Kind) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[kind]; ok {
		return s, nil
	}

	path := string(kind) + ".schema.json"
	data, err := fs.ReadFile(rootschemas.FS, path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "schema not embedded", Cause: err}
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "schema does not compile", Cause: err}
	}
	compiled[kind] = s
	return s, nil
}

// ValidateRecord validates one raw JSON record against the schema for kind.
func ValidateRecord(kind Kind, raw []byte) error {
	s, err := load(kind)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to read %s record: %w", kind, err)
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
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
