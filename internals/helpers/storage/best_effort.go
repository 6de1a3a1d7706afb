package storage

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog/log"
)

// TryUpload stores fh and returns nil instead of failing when the upload is
// rejected or the backend errors. A nil fh is a no-op.
func TryUpload(ctx context.Context, fs FileStorage, fh *multipart.FileHeader, folder string) *StoredFile {
	if fh == nil {
		return nil
	}
	stored, err := fs.Upload(ctx, fh, folder)
	if err != nil {
		log.Warn().Err(err).Str("folder", folder).Str("file", fh.Filename).Msg("image upload failed, continuing without image")
		return nil
	}
	return stored
}

// DeleteQuietly removes url if it is set and logs when nothing was deleted.
func DeleteQuietly(ctx context.Context, fs FileStorage, url string) {
	if url == "" {
		return
	}
	if !fs.Delete(ctx, url) {
		log.Warn().Str("url", url).Msg("stored file not deleted")
	}
}
