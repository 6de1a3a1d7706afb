package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileUploadModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FileName         string     `gorm:"size:255;not null" json:"fileName"`
	OriginalFileName string     `gorm:"size:255;not null" json:"originalFileName"`
	FilePath         string     `gorm:"size:500;not null" json:"filePath"`
	FileSize         int64      `gorm:"not null" json:"fileSize"`
	MimeType         string     `gorm:"size:100;not null" json:"mimeType"`
	FileCategory     string     `gorm:"size:20;not null" json:"fileCategory"`
	UploadedBy       *uuid.UUID `gorm:"type:uuid" json:"uploadedBy,omitempty"`
	EntityType       *string    `gorm:"size:100;index:idx_file_uploads_entity,priority:1" json:"entityType,omitempty"`
	EntityID         *string    `gorm:"size:100;index:idx_file_uploads_entity,priority:2" json:"entityId,omitempty"`
	IsTemporary      bool       `gorm:"not null" json:"isTemporary"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (FileUploadModel) TableName() string {
	return "file_uploads"
}

func (m *FileUploadModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
