package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rajnish018/portfolio-admin-backend/config"
)

// ImageStore uploads portfolio images to an S3 bucket and serves back their
// public URLs. Deletion of a superseded image is best-effort; callers log
// and ignore the error.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageStore builds an image store from config. S3_BUCKET is required;
// S3_PUBLIC_URL overrides the default virtual-hosted bucket URL (useful when
// a CDN fronts the bucket).
func NewImageStore(ctx context.Context, cfg map[string]string) (*ImageStore, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_URL", "")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, awsCfg.Region)
	}

	return &ImageStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores an image under key and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the object stored under key.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
