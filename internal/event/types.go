package event

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	TestSubmitted     EventType = "submission.test.completed"
	ExerciseSubmitted EventType = "submission.exercise.completed"
)

type SubmissionEvent struct {
	Type         EventType `json:"type"`
	SubmissionID string    `json:"submissionId"`
	SourceID     string    `json:"sourceId"`
	UserID       string    `json:"userId"`
	Score        float64   `json:"score"`
	CorrectCount int       `json:"correctCount"`
	Total        int       `json:"total"`
	Level        int       `json:"level"`
	TimedOut     bool      `json:"timedOut"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (e SubmissionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
