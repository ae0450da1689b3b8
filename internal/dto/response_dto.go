package dto

import (
	"time"

	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/session"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      model.User `json:"user"`
}

// CourseSummaryDTO omits the attachment payload.
type CourseSummaryDTO struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Category         model.ContentCategory `json:"category"`
	HasFile          bool                  `json:"hasFile"`
	FileType         *string               `json:"fileType,omitempty"`
	FileName         *string               `json:"fileName,omitempty"`
	FileStorageError bool                  `json:"fileStorageError,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// CourseWriteResponse reports how the attachment was stored.
type CourseWriteResponse struct {
	Course  model.Course `json:"course"`
	Warning string       `json:"warning,omitempty"`
}

// QuestionView is a question without its answer key.
type QuestionView struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Options []model.Option `json:"options"`
}

type TestSummaryDTO struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Duration      int                      `json:"duration"`
	Category      model.TestClassification `json:"category"`
	CourseID      *string                  `json:"courseId,omitempty"`
	QuestionCount int                      `json:"questionCount"`
	CreatedAt     time.Time                `json:"createdAt"`
}

type TestDetailDTO struct {
	TestSummaryDTO
	Questions []QuestionView `json:"questions"`
}

type ExerciseSummaryDTO struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      model.ContentCategory `json:"category"`
	CourseID      *string               `json:"courseId,omitempty"`
	QuestionCount int                   `json:"questionCount"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type ExerciseDetailDTO struct {
	ExerciseSummaryDTO
	Questions []QuestionView `json:"questions"`
}

type SessionDTO struct {
	ID               string            `json:"id"`
	Kind             session.Kind      `json:"kind"`
	SourceID         string            `json:"sourceId"`
	Title            string            `json:"title"`
	State            session.State     `json:"state"`
	CurrentIndex     int               `json:"currentIndex"`
	QuestionCount    int               `json:"questionCount"`
	CurrentQuestion  *QuestionView     `json:"currentQuestion,omitempty"`
	Selections       map[string]string `json:"selections"`
	AnsweredCount    int               `json:"answeredCount"`
	RemainingSeconds *int              `json:"remainingSeconds,omitempty"`
	Expired          bool              `json:"expired"`
	Warnings         []session.Warning `json:"warnings"`
	Outcome          *session.Outcome  `json:"outcome,omitempty"`
	LastError        string            `json:"lastError,omitempty"`
	StartedAt        time.Time         `json:"startedAt"`
}

type SubmissionHistoryDTO struct {
	Tests     []model.TestSubmission     `json:"tests"`
	Exercises []model.ExerciseSubmission `json:"exercises"`
}
