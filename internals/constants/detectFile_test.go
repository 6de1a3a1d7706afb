package constants

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDetectFileCategory(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name, mime, want string
	}{
		{"pothole.bin", "image/jpeg", FileCategoryImage},
		{"PHOTO.WEBP", "", FileCategoryImage},
		{"permit.pdf", "application/pdf", FileCategoryPDF},
		{"letter.docx", "application/octet-stream", FileCategoryDocument},
		{"archive.zip", "application/zip", FileCategoryOther},
	}
	for _, tt := range tests {
		c.Assert(DetectFileCategory(tt.name, tt.mime), qt.Equals, tt.want, qt.Commentf("%s", tt.name))
	}
}
