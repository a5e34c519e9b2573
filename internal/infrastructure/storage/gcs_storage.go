package storage

import (
	"context"
	"fmt"
	"log"

	"nelly_tech/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStorage uploads project images to a Cloud Storage bucket that serves
// objects publicly.
type GCSStorage struct {
	client *storage.Client
	bucket string
}

var _ interfaces.IImageStorage = (*GCSStorage)(nil)

func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000, immutable"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		log.Printf("[storage][gcs] write failed object=%s err=%v", key, err)
		return "", fmt.Errorf("failed to write to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		log.Printf("[storage][gcs] close failed object=%s err=%v", key, err)
		return "", fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	return gcsObjectURL(s.bucket, key), nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func gcsObjectURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, bucket, key)
}
