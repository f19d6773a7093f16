package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/pkg/storage"
)

const (
	thumbnailMaxWidth  = 200
	thumbnailMaxHeight = 200
)

// ItemSource resolves items for ownership checks. Implemented by item.Service.
type ItemSource interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, userID, itemID string) (*Photo, error)
	ListByItem(ctx context.Context, itemID string) ([]*Photo, error)
	Delete(ctx context.Context, userID, id string) error
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
}

type service struct {
	repo    Repository
	items   ItemSource
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, items ItemSource, store storage.Storage) Service {
	return &service{
		repo:    repo,
		items:   items,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

// Upload attaches a photo to an item. Only the item's owner may upload.
func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, userID, itemID string) (*Photo, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != userID {
		return nil, item.ErrNotOwner
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffer the upload so it can be read twice: once for the original,
	// once for the thumbnail. Item photos are small enough for this.
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}

	photoID := uuid.New().String()

	// Shard by the first two id characters to keep directories shallow.
	shard := photoID[:2]
	ext := strings.ToLower(filepath.Ext(header.Filename))
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("save photo failed: %w", err)
	}

	// A failed thumbnail does not fail the upload.
	var thumbnailPath *string
	if thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(raw), thumbnailMaxWidth, thumbnailMaxHeight); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		ItemID:        it.ID,
		UploaderID:    userID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Photo, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.ListByItem(ctx, itemID)
}

// Delete removes a photo and its blobs. Only the item's owner may delete.
func (s *service) Delete(ctx context.Context, userID, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	it, err := s.items.GetByID(ctx, p.ItemID)
	if err != nil {
		return err
	}
	if it.OwnerID != userID {
		return item.ErrNotOwner
	}

	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve photo failed: %w", err)
	}

	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}

	return stream, p, nil
}
