package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mwangie/CareToCrown/internal/config"
)

// S3FileStore keeps prescription files in an S3 bucket.
type S3FileStore struct {
	client *s3.Client
	bucket string
}

func NewS3FileStore(cfg *config.Config) *S3FileStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: awscreds.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return &S3FileStore{client: s3.New(opts), bucket: cfg.S3Bucket}
}

func (s *S3FileStore) Save(ctx context.Context, data []byte, mimeType string) (string, error) {
	if !Allowed(mimeType) {
		return "", fmt.Errorf("unsupported mime type %q", mimeType)
	}
	name := objectName(mimeType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return name, nil
}

var _ FileStore = (*S3FileStore)(nil)
