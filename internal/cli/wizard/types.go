// Package wizard asks the project questions interactively with huh, one
// form per question, and returns the responses as answers.Raw.
package wizard

import (
	"errors"

	"github.com/frontend-incubator/incubator/internal/answers"
)

// QuestionType represents the kind of prompt shown for a question.
type QuestionType int

const (
	// QuestionTypeInput is a free-text input.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
	// QuestionTypePassword is a text input with masked echo.
	QuestionTypePassword
)

// Question defines a single wizard question.
type Question struct {
	ID          string                  // Answer field the response is stored in.
	Type        QuestionType            // Prompt kind.
	Title       string                  // Question title.
	Description string                  // Additional description.
	Options     []Option                // Options for multi-select questions.
	Default     string                  // Default for input questions.
	Confirm     bool                    // Default for confirm questions.
	Condition   func(*answers.Raw) bool // Asked only when this returns true.
	Validate    func(string) error      // Optional input validation.
}

// Option represents a selectable option.
type Option struct {
	Label    string // Display label.
	Value    string // Stored value.
	Desc     string // Optional description.
	Selected bool   // Pre-selected.
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
