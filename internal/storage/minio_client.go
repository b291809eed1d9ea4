package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"blogsphere/internal/config"
)

// Storage keeps uploaded images (post covers and avatars).
type Storage interface {
	UploadImage(ctx context.Context, prefix, ownerID, fileName string, file io.Reader, size int64, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	ObjectNameFromURL(imageURL string) (string, bool)
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
	log    *zap.Logger
}

// NewMinIOClient connects to the object store and makes sure the bucket exists.
func NewMinIOClient(ctx context.Context, cfg config.MinIO, log *zap.Logger) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("minio make bucket %s: %w", cfg.BucketName, err)
		}
		log.Info("bucket created", zap.String("bucket", cfg.BucketName))
	}

	return &MinIOClient{client: client, cfg: cfg, log: log}, nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, prefix, ownerID, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	now := time.Now().UTC()
	objectName := buildObjectName(prefix, ownerID, fileName, now)

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(objectName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner-id":          ownerID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("minio upload %s: %w", objectName, err)
	}

	return objectName, publicURL(m.cfg, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.BucketName, objectName,
		minio.RemoveObjectOptions{GovernanceBypass: true})
	if err != nil {
		return fmt.Errorf("minio delete %s: %w", objectName, err)
	}
	return nil
}

// ObjectNameFromURL reverses publicURL. It reports false for URLs that do not
// point into this bucket.
func (m *MinIOClient) ObjectNameFromURL(imageURL string) (string, bool) {
	return objectNameFromURL(m.cfg, imageURL)
}

func buildObjectName(prefix, ownerID, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("%s/%s/%d/%02d/%s%s",
		prefix,
		ownerID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)
}

func publicURL(cfg config.MinIO, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(cfg.PublicURL, "/"), cfg.BucketName, objectName)
}

func objectNameFromURL(cfg config.MinIO, imageURL string) (string, bool) {
	base := strings.TrimSuffix(cfg.PublicURL, "/") + "/" + cfg.BucketName + "/"
	if !strings.HasPrefix(imageURL, base) {
		return "", false
	}

	name := strings.TrimPrefix(imageURL, base)
	if name == "" {
		return "", false
	}
	return name, true
}
