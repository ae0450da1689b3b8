package model

import (
	"time"

	"gorm.io/datatypes"
)

type Test struct {
	ID          string                        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string                        `gorm:"not null" json:"title"`
	Description string                        `json:"description"`
	Duration    int                           `gorm:"not null" json:"duration"` // minutes
	Category    TestClassification            `gorm:"type:varchar(32);not null;index" json:"category"`
	Questions   datatypes.JSONSlice[Question] `gorm:"type:jsonb;not null" json:"questions"`
	CourseID    *string                       `gorm:"type:varchar(36);index" json:"courseId,omitempty"`
	FileData    *string                       `gorm:"type:text" json:"fileData,omitempty"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
}
