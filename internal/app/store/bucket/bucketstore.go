// internal/app/store/bucket/bucketstore.go
package bucketstore

import (
	"bytes"
	"context"
	"io"

	imageservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/images"
	"github.com/minio/minio-go/v7"
)

// Store implements the image service's ObjectStore over a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
}

func New(client *minio.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket when it does not exist yet. Called once
// at startup.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Stat returns head metadata for the named object.
func (s *Store) Stat(ctx context.Context, name string) (imageservice.ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return imageservice.ObjectInfo{}, err
	}
	return imageservice.ObjectInfo{ContentType: info.ContentType}, nil
}

// Get opens the named object for reading.
func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
}

// Put writes the object in full.
func (s *Store) Put(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
