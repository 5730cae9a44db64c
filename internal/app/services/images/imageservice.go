// internal/app/services/images/imageservice.go
package imageservice

import (
	"context"
	"io"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"go.uber.org/zap"
)

// CacheControl is the directive attached to every served image. Image ids
// are unique per upload, so the content at a given name never changes.
const CacheControl = "public, max-age=31536000, immutable"

// defaultContentType is used when the store has no recorded content type.
const defaultContentType = "image/jpeg"

// ObjectInfo is the head metadata the service reads from the store.
type ObjectInfo struct {
	ContentType string
}

// ObjectStore abstracts the bucket backend holding image binaries.
type ObjectStore interface {
	Stat(ctx context.Context, name string) (ObjectInfo, error)
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	Put(ctx context.Context, name string, data []byte, contentType string) error
}

// Image is a served image: an open stream plus the headers to send it with.
// The caller owns closing the stream.
type Image struct {
	Stream       io.ReadCloser
	ContentType  string
	CacheControl string
}

// Service is a thin orchestration layer over the object store.
type Service struct {
	store ObjectStore
	log   *zap.Logger
}

func New(store ObjectStore, logger *zap.Logger) *Service {
	return &Service{store: store, log: logger}
}

// Get opens the named image for streaming. Every read-path failure, head
// metadata or stream open alike, collapses to NotFound; the underlying
// cause is only logged for operators.
func (s *Service) Get(ctx context.Context, name string) (Image, error) {
	if name == "" {
		return Image{}, apperr.InvalidArgument("Image name is required")
	}

	info, err := s.store.Stat(ctx, name)
	if err != nil {
		s.log.Warn("image not found in store", zap.String("name", name), zap.Error(err))
		return Image{}, apperr.NotFound("Image not found")
	}

	stream, err := s.store.Get(ctx, name)
	if err != nil {
		s.log.Warn("image not found in store", zap.String("name", name), zap.Error(err))
		return Image{}, apperr.NotFound("Image not found")
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return Image{
		Stream:       stream,
		ContentType:  contentType,
		CacheControl: CacheControl,
	}, nil
}

// Upload stores an image under the given name. Store failures surface as
// internal errors and are not retried here.
func (s *Service) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	if name == "" || len(data) == 0 {
		return apperr.InvalidArgument("Image name and data are required")
	}

	if err := s.store.Put(ctx, name, data, contentType); err != nil {
		s.log.Error("failed to upload image", zap.String("name", name), zap.Error(err))
		return apperr.Internal("Failed to upload image", err)
	}

	s.log.Info("image uploaded",
		zap.String("name", name),
		zap.String("contentType", contentType))
	return nil
}
