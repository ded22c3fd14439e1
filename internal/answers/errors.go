// Package answers turns raw prompt responses into a finalized
// models.AnswerSet. It is independent of how the responses were collected:
// the interactive wizard, command-line flags and tests all go through
// Normalize.
package answers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAnswers indicates one or more answers failed validation.
var ErrInvalidAnswers = errors.New("answers: invalid answers")

// FieldError describes a single rejected answer.
type FieldError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every rejected answer.
type ValidationErrors struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("answers: %d invalid answer(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is makes ValidationErrors match ErrInvalidAnswers.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidAnswers
}

// Field returns the error recorded for field, if any.
func (e *ValidationErrors) Field(field string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}
