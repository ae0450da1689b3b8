package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/atcprep/internal/model"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource already exists")
	ErrUnknownEmail = errors.New("no account is registered with this email")
)

// FileUpload is a raw file received from a client.
type FileUpload struct {
	Name string
	Data []byte
}

// validateQuestions enforces that every question is well formed and that its
// key names one of its own options.
func validateQuestions(v *validator.Validate, questions []model.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if err := v.Struct(q); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidInput, i+1, err)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %s", ErrInvalidInput, q.ID)
		}
		seen[q.ID] = true
		if !q.HasOption(q.CorrectOptionID) {
			return fmt.Errorf("%w: question %s: correct option %q is not one of its options", ErrInvalidInput, q.ID, q.CorrectOptionID)
		}
	}
	return nil
}
