package assessment

import (
	"math"

	"github.com/lshigami/atcprep/internal/model"
)

const MaxScaledScore = 20

// Result of scoring one completed attempt. Score is a percentage.
type Result struct {
	Score        float64 `json:"score"`
	CorrectCount int     `json:"correctCount"`
	Total        int     `json:"total"`
}

// Score compares every question's selected option with its key. A missing
// selection counts as incorrect, and so does a question whose key does not
// name one of its own options.
func Score(questions []model.Question, selections map[string]string) Result {
	res := Result{Total: len(questions)}
	for _, q := range questions {
		if IsCorrect(q, selections[q.ID]) {
			res.CorrectCount++
		}
	}
	if res.Total > 0 {
		res.Score = float64(res.CorrectCount) / float64(res.Total) * 100
	}
	return res
}

func IsCorrect(q model.Question, selected string) bool {
	if selected == "" || !q.HasOption(q.CorrectOptionID) {
		return false
	}
	return selected == q.CorrectOptionID
}

// Answers lists one answer per question in question order, unanswered ones
// carrying an empty selection.
func Answers(questions []model.Question, selections map[string]string) []model.SubmissionAnswer {
	answers := make([]model.SubmissionAnswer, len(questions))
	for i, q := range questions {
		selected := selections[q.ID]
		correct := IsCorrect(q, selected)
		answers[i] = model.SubmissionAnswer{
			QuestionID:       q.ID,
			SelectedOptionID: selected,
			IsCorrect:        &correct,
		}
	}
	return answers
}

// OutOfTwenty converts the result to the 0-20 scale used for levels.
func (r Result) OutOfTwenty() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.CorrectCount) / float64(r.Total) * MaxScaledScore))
}
