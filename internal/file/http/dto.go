package http

import (
	"time"

	"github.com/lendit/lendit-backend/internal/file"
)

// PhotoResponse is the photo metadata shape returned by the API. Binary
// content is served from the URL fields.
type PhotoResponse struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *file.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		ItemID:      p.ItemID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         file.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		thumbURL := file.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &thumbURL
	}
	return resp
}
