package supabase

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Uploaded field photos live under this prefix inside the bucket.
const fieldImagesPrefix = "field-images"

const defaultContentType = "application/octet-stream"

var (
	ErrInvalidFileURL = errors.New("file URL does not belong to this bucket")
	ErrUploadFailed   = errors.New("failed to upload file to storage")
	ErrDeleteFailed   = errors.New("failed to delete file from storage")
)

// Client talks to Supabase Storage through its S3-compatible endpoint.
type Client struct {
	s3Client    *s3.S3
	bucketName  string
	endpointURL string
}

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	BucketName      string
}

func NewClient(cfg Config) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Endpoint:         aws.String(cfg.EndpointURL),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return &Client{
		s3Client:    s3.New(sess),
		bucketName:  cfg.BucketName,
		endpointURL: cfg.EndpointURL,
	}, nil
}

// UploadFile stores the file under a random key, keeping the original
// extension, and returns the public URL.
func (c *Client) UploadFile(ctx context.Context, file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", fieldImagesPrefix, uuid.NewString(), ext)

	if _, err := file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = defaultContentType
	}

	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return c.PublicURL(key), nil
}

func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	key := c.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFileURL, fileURL)
	}

	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return nil
}

// PublicURL maps an object key to the public object endpoint. The S3
// endpoint and the public one share the host but not the path.
func (c *Client) PublicURL(key string) string {
	baseURL := strings.Replace(c.endpointURL, "/storage/v1/s3", "", 1)

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", baseURL, c.bucketName, key)
}

func (c *Client) keyFromURL(fileURL string) string {
	parts := strings.Split(fileURL, "/")

	for i, part := range parts {
		if part == c.bucketName && i < len(parts)-1 {
			return strings.Join(parts[i+1:], "/")
		}
	}

	return ""
}
