package questionbank

import (
	"fmt"
	"strings"
)

// ValidationError describes why a generated batch failed validation.
type ValidationError struct {
	Index   int    // Question index in the batch
	Message string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d: %s", e.Index, e.Message)
}

// validateBatch checks a generated batch for structural problems the
// JSON schema cannot express.
func validateBatch(questions []Question) error {
	if len(questions) == 0 {
		return &ValidationError{Index: 0, Message: "batch is empty"}
	}
	for i, q := range questions {
		if err := validateQuestion(i, q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(i int, q Question) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Index: i, Message: "question text is empty"}
	}
	if len(q.Options) != 4 {
		return &ValidationError{Index: i, Message: fmt.Sprintf("got %d options, want 4", len(q.Options))}
	}
	for j, opt := range q.Options {
		wantPrefix := string(rune('A'+j)) + ")"
		if !strings.HasPrefix(opt, wantPrefix) {
			return &ValidationError{Index: i, Message: fmt.Sprintf("option %d not labeled %q", j, wantPrefix)}
		}
	}
	switch q.Correct {
	case "A", "B", "C", "D":
	default:
		return &ValidationError{Index: i, Message: fmt.Sprintf("correct option %q is not a letter A-D", q.Correct)}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{Index: i, Message: "difficulty must be between 1 and 5"}
	}
	return nil
}
