package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/farmtech/agrirent/internal/config"
)

// Uploader puts equipment images into an S3 (or S3-compatible) bucket
// and returns a public URL for the stored object.
type Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewUploader returns nil when no bucket is configured, in which case
// the image routes are not registered.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicBase := cfg.S3PublicBase
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
	}

	return &Uploader{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

func (u *Uploader) UploadEquipmentImage(
	ctx context.Context,
	equipmentID uint,
	data []byte,
	contentType string,
) (string, error) {

	key := fmt.Sprintf("equipments/%d/%s.webp", equipmentID, uuid.NewString())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.publicBase + "/" + key, nil
}
