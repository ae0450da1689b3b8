package model

import (
	"time"

	"gorm.io/datatypes"
)

type SubmissionAnswer struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	IsCorrect        *bool  `json:"isCorrect,omitempty"`
}

// TestSubmission rows are appended, one per completed attempt.
type TestSubmission struct {
	ID             string                                `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TestID         string                                `gorm:"type:varchar(36);not null;index" json:"testId"`
	UserID         string                                `gorm:"type:varchar(36);not null;index" json:"userId"`
	Answers        datatypes.JSONSlice[SubmissionAnswer] `gorm:"type:jsonb;not null" json:"answers"`
	Score          *float64                              `json:"score,omitempty"`
	TotalQuestions *int                                  `json:"totalQuestions,omitempty"`
	SubmittedAt    time.Time                             `gorm:"not null" json:"submittedAt"`
}

// ExerciseSubmission keeps a single row per (exercise, user); later attempts replace it.
type ExerciseSubmission struct {
	ID             string                                `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ExerciseID     string                                `gorm:"type:varchar(36);not null;uniqueIndex:idx_exercise_user" json:"exerciseId"`
	UserID         string                                `gorm:"type:varchar(36);not null;uniqueIndex:idx_exercise_user" json:"userId"`
	Answers        datatypes.JSONSlice[SubmissionAnswer] `gorm:"type:jsonb;not null" json:"answers"`
	Score          *float64                              `json:"score,omitempty"`
	TotalQuestions *int                                  `json:"totalQuestions,omitempty"`
	SubmittedAt    time.Time                             `gorm:"not null" json:"submittedAt"`
}
