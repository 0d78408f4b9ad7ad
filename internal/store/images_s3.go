// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

// s3API is the subset of *s3.Client used by the image storage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// s3ImageStorage keeps images as objects "uploads/<name>" in one bucket of
// an S3-compatible store. Object writes are not exclusive, so every name
// carries a uuid suffix.
type s3ImageStorage struct {
	client  s3API
	bucket  string
	maxSize int64
	ids     *utils.UUIDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewS3ImageStorage builds an [ImageStorage] on top of aws-sdk-go-v2. Static
// credentials and a base endpoint are used when configured, which is how
// MinIO deployments are addressed.
func NewS3ImageStorage(ctx context.Context, cfg config.Images, logger *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.S3.Bucket).Msg("creating s3 image storage")
	return newS3ImageStorage(client, cfg.S3.Bucket, cfg.MaxSize, logger), nil
}

func newS3ImageStorage(client s3API, bucket string, maxSize int64, logger *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client:  client,
		bucket:  bucket,
		maxSize: maxSize,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

// Save uploads the image. The body is buffered so the request can be signed
// with a known content length.
func (s *s3ImageStorage) Save(ctx context.Context, image models.ImageUpload) (string, error) {
	log := logger.FromContext(ctx)

	content := image.Content
	if s.maxSize > 0 {
		content = io.LimitReader(content, s.maxSize+1)
	}
	body, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}
	if s.maxSize > 0 && int64(len(body)) > s.maxSize {
		return "", fmt.Errorf("%w: image exceeds %d bytes", ErrSavingImage, s.maxSize)
	}

	key := imageRef(uniqueImageName(imageName(s.now(), image.Filename), s.ids.Generate()))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(image.ContentType),
	})
	if err != nil {
		log.Err(err).Str("func", "s3ImageStorage.Save").Str("key", key).Msg("failed to upload image")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	return key, nil
}

// Remove deletes the object behind ref.
func (s *s3ImageStorage) Remove(ctx context.Context, ref string) error {
	if _, err := imageNameFromRef(ref); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3ImageStorage.Remove").Str("ref", ref).Msg("failed to remove image")
		return fmt.Errorf("%w: %w", ErrRemovingImage, err)
	}

	return nil
}
