// Package storage archives scanned source documents. The default backend is
// an in-process memory archive; S3-compatible storage is the durable option.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/synergytrade/backend/internal/application/docproc"
	infraconfig "github.com/synergytrade/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// S3DocumentArchive stores scanned documents in any S3-compatible backend
// (AWS S3, MinIO, and the like)
type S3DocumentArchive struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// S3Option is a functional option for configuring S3DocumentArchive
type S3Option func(*S3DocumentArchive)

// WithLogger sets a custom logger for S3DocumentArchive
func WithLogger(logger *zap.Logger) S3Option {
	return func(a *S3DocumentArchive) {
		a.logger = logger
	}
}

// NewS3DocumentArchive creates a new S3DocumentArchive from configuration
func NewS3DocumentArchive(cfg *infraconfig.StorageConfig, opts ...S3Option) (*S3DocumentArchive, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.ForcePathStyle
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			if _, err := url.Parse(endpoint); err == nil {
				o.BaseEndpoint = aws.String(endpoint)
			}
		}
	})

	archive := &S3DocumentArchive{
		client: client,
		bucket: cfg.Bucket,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(archive)
	}
	return archive, nil
}

// Store uploads one scanned document under the given key
func (a *S3DocumentArchive) Store(ctx context.Context, storageKey, contentType string, content []byte) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(storageKey),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", storageKey, err)
	}
	a.logger.Debug("document archived",
		zap.String("key", storageKey),
		zap.Int("bytes", len(content)),
	)
	return nil
}

var _ docproc.DocumentArchiver = (*S3DocumentArchive)(nil)
