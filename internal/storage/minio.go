package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStorage keeps listing photos in a MinIO (S3-compatible) bucket and
// hands out stable object URLs for the records' image field.
type PhotoStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewPhotoStorage connects to MinIO and ensures the photo bucket exists.
func NewPhotoStorage(cfg *MinIOConfig) (*PhotoStorage, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	s := &PhotoStorage{
		client:  mc,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		// tolerate "already exists" style errors
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// UploadPhoto streams a photo into the bucket under the given key.
func (s *PhotoStorage) UploadPhoto(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// DownloadPhoto returns a ReadCloser for a stored photo.
func (s *PhotoStorage) DownloadPhoto(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// stat to surface missing-object errors eagerly
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// PhotoURL returns the plain object URL stored in the listing's image field.
// The bucket is expected to allow public reads in deployments that use it.
func (s *PhotoStorage) PhotoURL(key string) string {
	return s.baseURL + "/" + key
}

// PresignedPhotoURL returns a presigned GET URL for private buckets.
func (s *PhotoStorage) PresignedPhotoURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, expires, url.Values{})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
