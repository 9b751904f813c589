package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ImageStore uploads product images to a GCS bucket and resolves stored
// object keys back to public URLs. The bucket is expected to grant
// allUsers object-viewer access, so no per-object ACL work is needed.
type ImageStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

func NewImageStore(ctx context.Context, bucket string) (*ImageStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("image store: bucket is empty")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	return &ImageStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: "https://storage.googleapis.com",
	}, nil
}

// Upload stores one multipart file under products/ and returns its object key.
func (s *ImageStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("image store: open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("products/%s_%s", uuid.NewString(), filepath.Base(file.Filename))

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = file.Header.Get("Content-Type")
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return "", fmt.Errorf("image store: write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("image store: close object: %w", err)
	}
	return key, nil
}

// PublicURL resolves a stored object key to its public address.
func (s *ImageStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
}
