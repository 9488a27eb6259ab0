package schema

import (
	"strings"

	"shuvoedward/Bible_reader/internal/validator"
)

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every field that did not match its schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Map returns the field errors keyed by path, the shape used in 422 responses.
func (e *ValidationError) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Path] = f.Message
	}
	return m
}

func fromValidator(v *validator.Validator) error {
	if v.Valid() {
		return nil
	}

	keys := v.Keys()
	fields := make([]FieldError, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, FieldError{Path: k, Message: v.Errors[k]})
	}

	return &ValidationError{Fields: fields}
}
