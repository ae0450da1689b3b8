package model

// Option is a single answer choice of a multiple-choice question.
type Option struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Question is stored inside its Test or Exercise and never changes afterwards.
type Question struct {
	ID              string   `json:"id" validate:"required"`
	Text            string   `json:"text" validate:"required"`
	Options         []Option `json:"options" validate:"min=2,dive"`
	CorrectOptionID string   `json:"correctOptionId" validate:"required"`
}

// HasOption reports whether optionID names one of the question's own options.
func (q Question) HasOption(optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}
