package profile

import (
	"fmt"
	"strings"
)

// FieldError scopes one validation failure to the document field that caused
// it, e.g. "links[2].url".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every failed check of one validation pass. A
// nil/empty slice means the document is valid.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fieldErr := range e {
		parts[i] = fieldErr.String()
	}
	return "profile validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) add(field string, format string, args ...interface{}) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}
