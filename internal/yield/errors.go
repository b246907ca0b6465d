package yield

import (
	"fmt"
	"strings"
)

// PromptMessage is the blocking notice the dashboard shows for an incomplete form.
const PromptMessage = "Por favor complete todos los campos"

// FieldError describes one rejected calculator input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a yield request is incomplete or malformed.
// No partial result accompanies it.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Message))
	}
	return "invalid yield request: " + strings.Join(parts, "; ")
}

// Fields returns the names of the rejected inputs in the order they were checked.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		fields = append(fields, p.Field)
	}
	return fields
}

func (e *ValidationError) add(field, message string) {
	e.Problems = append(e.Problems, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
