package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alisto_backend/internals/constants"
	infoModel "alisto_backend/internals/features/information/model"
	"alisto_backend/internals/helpers/storage"
)

// RecordUpload registers a stored file against the entity it belongs to.
func RecordUpload(db *gorm.DB, f *storage.StoredFile, entityType, entityID string, uploadedBy *uuid.UUID) error {
	if f == nil {
		return nil
	}
	row := infoModel.FileUploadModel{
		FileName:         f.FileName,
		OriginalFileName: f.OriginalName,
		FilePath:         f.URL,
		FileSize:         f.Size,
		MimeType:         f.ContentType,
		FileCategory:     constants.DetectFileCategory(f.FileName, f.ContentType),
		UploadedBy:       uploadedBy,
		EntityType:       &entityType,
		EntityID:         &entityID,
		IsTemporary:      false,
	}
	return db.Create(&row).Error
}

// ForgetUpload drops the file_uploads row of a deleted file.
func ForgetUpload(db *gorm.DB, url string) error {
	return db.Where("file_path = ?", url).Delete(&infoModel.FileUploadModel{}).Error
}
