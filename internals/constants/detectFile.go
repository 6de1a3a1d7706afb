package constants

import (
	"path/filepath"
	"strings"
)

// File categories stored in file_uploads.file_category.
const (
	FileCategoryImage    = "image"
	FileCategoryDocument = "document"
	FileCategoryPDF      = "pdf"
	FileCategoryOther    = "other"
)

func DetectFileCategory(filename, mimeType string) string {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return FileCategoryImage
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return FileCategoryImage
	case ".pdf":
		return FileCategoryPDF
	case ".doc", ".docx", ".odt", ".txt":
		return FileCategoryDocument
	default:
		return FileCategoryOther
	}
}
