package dto

import "github.com/lshigami/atcprep/internal/model"

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CourseForm is bound from multipart/form-data; the attachment travels in the "file" part.
type CourseForm struct {
	Title       string                `form:"title" binding:"required"`
	Description string                `form:"description"`
	Content     string                `form:"content"`
	Category    model.ContentCategory `form:"category" binding:"required,oneof=aerodrome approach ccr"`
	RemoveFile  bool                  `form:"removeFile"`
}

// QuestionCreateDTO is one manually authored question; ids are assigned by the server.
type QuestionCreateDTO struct {
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correctIndex" binding:"min=0"`
}

type TestCreateDTO struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Duration    int                      `json:"duration" binding:"required,min=1"`
	Category    model.TestClassification `json:"category" binding:"required,oneof=fundamentals advanced airspace emergency"`
	CourseID    *string                  `json:"courseId"`
	Questions   []QuestionCreateDTO      `json:"questions" binding:"required,min=1,dive"`
}

// TestGenerateForm is bound from multipart/form-data. Bank selects the
// question bank standing in for document extraction.
type TestGenerateForm struct {
	Title       string                   `form:"title" binding:"required"`
	Description string                   `form:"description"`
	Duration    int                      `form:"duration" binding:"required,min=1"`
	Category    model.TestClassification `form:"category" binding:"required,oneof=fundamentals advanced airspace emergency"`
	Bank        model.ContentCategory    `form:"bank" binding:"required,oneof=aerodrome approach ccr"`
	CourseID    *string                  `form:"courseId"`
}

type TestUpdateDTO struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Duration    int                      `json:"duration" binding:"required,min=1"`
	Category    model.TestClassification `json:"category" binding:"required,oneof=fundamentals advanced airspace emergency"`
	CourseID    *string                  `json:"courseId"`
}

type ExerciseGenerateDTO struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Category    model.ContentCategory `json:"category" binding:"required,oneof=aerodrome approach ccr"`
	CourseID    *string               `json:"courseId"`
}

type SelectAnswerDTO struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

type JumpDTO struct {
	Index *int `json:"index" binding:"required"`
}

type GradeUpdateDTO struct {
	Slot  string   `json:"slot" binding:"required"`
	Grade *float64 `json:"grade" binding:"required,min=0,max=20"`
}
