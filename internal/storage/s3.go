package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store stores media in a single S3-compatible bucket, configured for
// path-style access so CEPH and Hetzner object storage work.
type S3Store struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL
}

// NewS3 creates an S3 storage backend with static credentials and
// path-style addressing. Returns (nil, nil) if endpoint or credentials
// are empty, so the app can start without object storage.
func NewS3(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*S3Store, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3Store{
		s3:        client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Save uploads an object with public-read ACL so it can be served
// straight from the bucket.
func (s *S3Store) Save(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return nil
}

// Open streams an object back from the bucket.
func (s *S3Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download %s: %w", key, err)
	}
	return output.Body, nil
}

// Remove deletes an object. S3 DeleteObject succeeds for missing keys.
func (s *S3Store) Remove(ctx context.Context, key string) error {
	_, err := s.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for an object. Uses the configured public
// URL if set, otherwise builds a path-style URL.
func (s *S3Store) URL(key string) (string, bool) {
	if s.publicURL != "" {
		return s.publicURL + "/" + key, true
	}
	return s.endpoint + "/" + s.bucket + "/" + key, true
}
