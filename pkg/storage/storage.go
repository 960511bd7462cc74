// Package storage uploads artwork images to object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore stores images and returns the URL they are served from.
type ImageStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Config locates a MinIO or S3 compatible bucket.
type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// MinioStore implements ImageStore on MinIO.
type MinioStore struct {
	client *minio.Client
	bucket string
	base   *url.URL
}

var _ ImageStore = (*MinioStore)(nil)

// NewMinioStore connects to MinIO and makes sure the bucket exists.
func NewMinioStore(cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, base: client.EndpointURL()}, nil
}

// Put uploads r under key and returns its public URL.
func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return ObjectURL(m.base, m.bucket, key), nil
}

// Delete removes the object stored under key.
func (m *MinioStore) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// ObjectURL builds the path-style URL of key in bucket.
func ObjectURL(base *url.URL, bucket, key string) string {
	u := *base
	u.Path = path.Join("/", u.Path, bucket, key)
	return u.String()
}

// ImageKey is the object key for an artwork image.
func ImageKey(artworkID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("artworks", artworkID, "image"+ext)
}
