package storage

import (
	"bytes"
	"context"
	"fmt"

	appconfig "proclinic-server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// ObjectStorage holds the uploaded document blobs. Keys are the per-clinic
// paths produced by entity.StorageKeyFor.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type s3Storage struct {
	bucket string
	region string
	client *s3.Client
}

func NewS3Storage(ctx context.Context, cfg appconfig.S3Config) (ObjectStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logrus.Infof("Object storage ready (bucket %s)", cfg.Bucket)

	return &s3Storage{
		bucket: cfg.Bucket,
		region: cfg.Region,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

// Upload stores the blob and returns its public URL.
func (s *s3Storage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
