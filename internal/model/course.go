package model

import "time"

type Course struct {
	ID               string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title            string          `gorm:"not null" json:"title"`
	Description      string          `json:"description"`
	Content          string          `gorm:"type:text" json:"content"`
	Category         ContentCategory `gorm:"type:varchar(32);not null;index" json:"category"`
	FileData         *string         `gorm:"type:text" json:"fileData,omitempty"`
	FileType         *string         `json:"fileType,omitempty"`
	FileName         *string         `json:"fileName,omitempty"`
	FileStorageError bool            `gorm:"not null;default:false" json:"fileStorageError,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
