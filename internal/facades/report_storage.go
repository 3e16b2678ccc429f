package facades

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
)

// S3API is the subset of the S3 client used for report objects.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ReportStorageS3Facade stores report files in a single S3-compatible bucket.
type ReportStorageS3Facade struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

// NewReportStorageS3Facade creates a facade over bucket. Object URLs are
// publicBaseURL joined with the object key.
func NewReportStorageS3Facade(client S3API, bucket, publicBaseURL string) *ReportStorageS3Facade {
	return &ReportStorageS3Facade{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// DefaultPublicBaseURL derives the bucket URL when none is configured.
func DefaultPublicBaseURL(bucket, region, endpoint string, usePathStyle bool) string {
	if endpoint != "" {
		endpoint = strings.TrimRight(endpoint, "/")
		if usePathStyle {
			return endpoint + "/" + bucket
		}
		scheme, host, ok := strings.Cut(endpoint, "://")
		if !ok {
			return endpoint + "/" + bucket
		}
		return scheme + "://" + bucket + "." + host
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// Upload writes body under key and returns its retrieval URL.
func (f *ReportStorageS3Facade) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload report object",
			"bucket", f.bucket, "key", key, "error", err)
		return "", fmt.Errorf("report storage: put object: %w", err)
	}

	return f.PublicURL(key), nil
}

// Delete removes the object stored under key.
func (f *ReportStorageS3Facade) Delete(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("failed to delete report object",
			"bucket", f.bucket, "key", key, "error", err)
		return fmt.Errorf("report storage: delete object: %w", err)
	}
	return nil
}

// PublicURL returns the retrieval URL of key.
func (f *ReportStorageS3Facade) PublicURL(key string) string {
	return f.publicBaseURL + "/" + key
}
