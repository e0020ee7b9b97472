package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docvault/internal/config"
)

// minioBackend implements Backend on an S3-compatible object store (MinIO,
// AWS S3, etc.). Objects live at the bucket root so the flat-directory
// naming convention carries over unchanged. It is safe for concurrent use
// by multiple goroutines.
type minioBackend struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

// NewMinIO creates an S3-compatible storage backend backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Backend, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	mb := &minioBackend{client: cli, cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return mb, nil
}

// Put uploads an object using streaming I/O only (no local disk).
func (m *minioBackend) Put(ctx context.Context, name string, r io.Reader, size int64) (FileInfo, error) {
	info, err := m.client.PutObject(ctx, m.cfg.Bucket, name, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return FileInfo{}, err
	}
	now := time.Now() // PutObject info does not carry LastModified
	return FileInfo{
		Name:       name,
		Size:       info.Size,
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

// List enumerates every object in the bucket. The object's LastModified
// stands in for both timestamps; objects are write-once here too.
func (m *minioBackend) List(ctx context.Context) ([]FileInfo, error) {
	var infos []FileInfo
	for obj := range m.client.ListObjects(ctx, m.cfg.Bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		infos = append(infos, FileInfo{
			Name:       obj.Key,
			Size:       obj.Size,
			CreatedAt:  obj.LastModified,
			ModifiedAt: obj.LastModified,
		})
	}
	return infos, nil
}

// Exists reports bucket existence, the object-store analogue of the
// upload directory being present.
func (m *minioBackend) Exists(ctx context.Context) (bool, error) {
	return m.client.BucketExists(ctx, m.cfg.Bucket)
}

func (m *minioBackend) Location() string {
	return fmt.Sprintf("%s/%s", m.cfg.Endpoint, m.cfg.Bucket)
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
func (m *minioBackend) PresignGet(ctx context.Context, name string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.cfg.Bucket, name, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
