package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config holds the connection settings for an S3-compatible bucket
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	CDNURL    string // Public base URL objects are served from
}

// Enabled reports whether enough settings are present to upload
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// Publisher uploads rendered images to an S3-compatible bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	cdnURL string
	logger core.Logger
}

// NewS3Publisher creates a publisher with a static-credential session
func NewS3Publisher(config S3Config, logger core.Logger) (*Publisher, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewPublisher(s3.New(sess), config.Bucket, config.CDNURL, logger), nil
}

// NewPublisher wraps an existing S3 client
func NewPublisher(client s3iface.S3API, bucket, cdnURL string, logger core.Logger) *Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		cdnURL: strings.TrimRight(cdnURL, "/"),
		logger: logger,
	}
}

// Upload stores data under key and returns its public URL
func (p *Publisher) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return p.URL(key), nil
}

// UploadPNG encodes img and uploads it under key
func (p *Publisher) UploadPNG(ctx context.Context, key string, img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return p.Upload(ctx, key, data, "image/png")
}

// URL returns the public URL of key. Without a CDN base the s3:// form is used.
func (p *Publisher) URL(key string) string {
	if p.cdnURL == "" {
		return fmt.Sprintf("s3://%s/%s", p.bucket, key)
	}
	return fmt.Sprintf("%s/%s", p.cdnURL, key)
}
