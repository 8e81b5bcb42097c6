package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"servineta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3FileStore stores uploaded files in an S3 bucket. Object keys are
// prefix/uuid.ext, so original filenames never collide.
//
// Supported env vars (local-friendly):
//   - S3_BUCKET (default: uploads)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
type S3FileStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

func ConnectS3() *S3FileStore {
	cfg, err := newS3ConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3FileStore{
		client: client,
		bucket: getenvDefault("S3_BUCKET", "uploads"),
	}
}

func (s *S3FileStore) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := path.Join(prefix, uuid.NewString()+strings.ToLower(path.Ext(filename)))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

func (s *S3FileStore) Delete(ctx context.Context, storedPath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storedPath),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", storedPath, err)
	}
	return nil
}

func newS3ConfigFromEnv(ctx context.Context) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
