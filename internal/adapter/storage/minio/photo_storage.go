package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ceyhunemlak/listing-service/internal/config"
	portstorage "github.com/ceyhunemlak/listing-service/internal/port/storage"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// PhotoStorage keeps listing galleries in a MinIO bucket. Objects live
// under per-listing folders; the object key doubles as the storage id
// recorded in the datastore.
type PhotoStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

func NewPhotoStorage(cfg *config.MinioConfig, logger *zap.Logger) (*PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", cfg.Bucket, err, existsErr)
		}
	}
	logger.Info("MinIO photo storage ready",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket))

	return &PhotoStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(client.EndpointURL().String(), "/"),
		logger:  logger,
	}, nil
}

func (s *PhotoStorage) urlFor(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectKey)
}

func (s *PhotoStorage) Upload(ctx context.Context, folder, fileName string, data []byte) (string, string, error) {
	ext := filepath.Ext(fileName)
	objectKey := path.Join(folder, uuid.New().String()+ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(ext),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	s.logger.Debug("uploaded photo", zap.String("object_key", objectKey), zap.Int("size", len(data)))
	return objectKey, s.urlFor(objectKey), nil
}

func contentTypeFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

func (s *PhotoStorage) Delete(ctx context.Context, storageID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", storageID, err)
	}
	return nil
}

// DeleteAdmin is the fallback deletion path: it bypasses object
// governance retention, which the primary path respects.
func (s *PhotoStorage) DeleteAdmin(ctx context.Context, storageID string) error {
	opts := minio.RemoveObjectOptions{GovernanceBypass: true}
	if err := s.client.RemoveObject(ctx, s.bucket, storageID, opts); err != nil {
		return fmt.Errorf("failed to remove object %s with governance bypass: %w", storageID, err)
	}
	return nil
}

// RenameFolder moves every object under oldPrefix to newPrefix via
// server-side copy + remove. A per-object failure skips that object and
// keeps going; the caller receives the moves that actually happened.
func (s *PhotoStorage) RenameFolder(ctx context.Context, oldPrefix, newPrefix string) ([]portstorage.MovedResource, error) {
	return s.transferFolder(ctx, oldPrefix, newPrefix, true)
}

// CopyFolder duplicates every object under oldPrefix into newPrefix,
// leaving the originals in place.
func (s *PhotoStorage) CopyFolder(ctx context.Context, oldPrefix, newPrefix string) ([]portstorage.MovedResource, error) {
	return s.transferFolder(ctx, oldPrefix, newPrefix, false)
}

func (s *PhotoStorage) transferFolder(ctx context.Context, oldPrefix, newPrefix string, removeSource bool) ([]portstorage.MovedResource, error) {
	prefix := strings.TrimRight(oldPrefix, "/") + "/"
	var moved []portstorage.MovedResource

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return moved, fmt.Errorf("failed to list objects under %s: %w", prefix, obj.Err)
		}

		newKey := path.Join(newPrefix, path.Base(obj.Key))
		_, err := s.client.CopyObject(ctx,
			minio.CopyDestOptions{Bucket: s.bucket, Object: newKey},
			minio.CopySrcOptions{Bucket: s.bucket, Object: obj.Key},
		)
		if err != nil {
			s.logger.Warn("failed to copy object during folder transfer",
				zap.String("from", obj.Key),
				zap.String("to", newKey),
				zap.Error(err))
			continue
		}
		if removeSource {
			if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
				s.logger.Warn("failed to remove source object after copy",
					zap.String("object_key", obj.Key),
					zap.Error(err))
			}
		}
		moved = append(moved, portstorage.MovedResource{
			OldID:  obj.Key,
			NewID:  newKey,
			NewURL: s.urlFor(newKey),
		})
	}
	return moved, nil
}
