package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"condoadmin_backend/pkg/config"
)

// Client is the object storage surface the upload controllers depend on.
// Tests swap Default for a recording fake to assert that rejected files
// never reach storage.
type Client interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Default is the client used by the controllers, set once at startup.
var Default Client

// R2Client stores objects in a Cloudflare R2 bucket and serves them from a
// CDN base URL.
type R2Client struct {
	s3      *s3.Client
	bucket  string
	cdnBase string
}

// NewR2Client builds the R2-backed client from storage configuration.
func NewR2Client(cfg config.StorageConfig) (*R2Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &R2Client{
		s3:      client,
		bucket:  cfg.Bucket,
		cdnBase: strings.TrimSuffix(cfg.CDNBase, "/"),
	}, nil
}

// Upload stores the object under key and returns its public CDN URL.
func (c *R2Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload file to R2: %w", err)
	}

	return c.cdnBase + "/" + key, nil
}

// Delete removes the object behind a previously returned URL.
func (c *R2Client) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, c.cdnBase+"/")

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("could not delete file from R2: %w", err)
	}

	return nil
}

// ObjectKey builds an organized, URL-safe object path:
// websites/<site>/<slot>/<unique>.<ext>
func ObjectKey(websiteSlug, slot, filename string) string {
	ext := filepath.Ext(filename)
	unique := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.New().String())
	return filepath.Join("websites", slug.Make(websiteSlug), slug.Make(slot), unique+ext)
}

// FileNameFromURL returns the last path segment of an asset URL.
func FileNameFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
