package file

import (
	"net/http"
	"time"

	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "photo not found")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrNotImage    = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
)

// Photo is an image attached to a listed item. The original and its
// thumbnail live in blob storage; only metadata is kept in the database.
type Photo struct {
	ID            string
	ItemID        string
	UploaderID    string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public download path for a photo.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public download path for a photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
