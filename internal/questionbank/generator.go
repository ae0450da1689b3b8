package questionbank

import (
	"errors"
	"fmt"

	"github.com/lshigami/atcprep/internal/model"
)

const (
	ExerciseQuestionCount = 10
	TestQuestionCount     = 50
)

// ErrNoQuestionsForCategory is returned alongside an empty question list.
// Callers log it and carry on.
var ErrNoQuestionsForCategory = errors.New("no questions for category")

// Generator expands a category bank into a fixed-size ordered question set.
type Generator struct {
	banks func(model.ContentCategory) []Entry
}

func NewGenerator() *Generator {
	return &Generator{banks: Bank}
}

// NewGeneratorWithBanks builds a generator over caller-supplied banks.
func NewGeneratorWithBanks(banks map[model.ContentCategory][]Entry) *Generator {
	return &Generator{banks: func(c model.ContentCategory) []Entry { return banks[c] }}
}

// Generate produces exactly count questions by cycling through the bank.
// Question i gets id q{i+1}; its options get q{i+1}o{j+1}.
func (g *Generator) Generate(category model.ContentCategory, count int) ([]model.Question, error) {
	bank := g.banks(category)
	if len(bank) == 0 {
		return []model.Question{}, fmt.Errorf("%w: %s", ErrNoQuestionsForCategory, category)
	}
	if count <= 0 {
		return []model.Question{}, nil
	}

	questions := make([]model.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, bank[i%len(bank)].Question(i))
	}
	return questions, nil
}

// Question builds the question at position i from this entry.
func (e Entry) Question(i int) model.Question {
	qID := fmt.Sprintf("q%d", i+1)
	options := make([]model.Option, len(e.Options))
	for j, text := range e.Options {
		options[j] = model.Option{ID: fmt.Sprintf("%so%d", qID, j+1), Text: text}
	}
	return model.Question{
		ID:              qID,
		Text:            e.Prompt,
		Options:         options,
		CorrectOptionID: fmt.Sprintf("%so%d", qID, e.CorrectIndex+1),
	}
}
