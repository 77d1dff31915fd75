package objstore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/timearchive/server/internal/config"
)

// Store persists uploaded binaries. With S3 configured, objects go to the
// bucket; otherwise files land in a local uploads directory. Either way the
// returned locator is opaque to the rest of the system.
type Store struct {
	client   *minio.Client
	bucket   string
	localDir string
}

// New creates an upload store from configuration
func New(cfg config.S3Config, localDir string) (*Store, error) {
	store := &Store{localDir: localDir}

	if !cfg.Enabled() {
		if err := os.MkdirAll(localDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}

		return store, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	store.client = client
	store.bucket = cfg.Bucket

	return store, nil
}

// Save writes the file and returns its locator ("s3://bucket/key" or a
// local path)
func (s *Store) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("uploads/%s_%s", uuid.NewString(), sanitizeFilename(filename))

	if s.client == nil {
		path := filepath.Join(s.localDir, filepath.Base(key))

		if err := os.WriteFile(path, data, 0o640); err != nil {
			return "", fmt.Errorf("failed to write upload to disk: %w", err)
		}

		return path, nil
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// strips path separators and whitespace from user-supplied names
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")

	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}

	return name
}
