// Package s3store is the S3 backend of objectstore.Store, built on the AWS
// SDK. It works against AWS itself and path-style endpoints such as
// LocalStack or MinIO.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/oggyb/messages-api/internal/objectstore"
)

var _ objectstore.Store = (*Client)(nil)

// Options configures a Client.
type Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Timeout         time.Duration
}

// Client signs every request with static credentials and addresses objects
// path-style as <endpoint>/<bucket>/<key>.
type Client struct {
	s3     *s3.Client
	region string
}

func New(opts Options) *Client {
	s3Opts := s3.Options{
		Region:       opts.Region,
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		HTTPClient:   awshttp.NewBuildableClient().WithTimeout(opts.Timeout),
		// One attempt per call.
		Retryer: aws.NopRetryer{},
		// Some S3-compatible stores reject trailing checksums.
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
	}

	return &Client{
		s3:     s3.New(s3Opts),
		region: opts.Region,
	}
}

// Put uploads body, replacing any existing object under key.
func (c *Client) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logAPIError("put object", bucket, key, err)
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// Get downloads the object and returns its body verbatim. A missing object
// or bucket matches objectstore.ErrNotFound.
func (c *Client) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logAPIError("get object", bucket, key, err)
		if isNotFound(err) {
			return nil, fmt.Errorf("get object: %w: %w", objectstore.ErrNotFound, err)
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("get object: failed to read body: %w", err)
	}
	return body, nil
}

// EnsureBucket creates bucket. A bucket that already exists counts as success.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 is the default location and must not be named explicitly.
	if c.region != "" && c.region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.region),
		}
	}

	_, err := c.s3.CreateBucket(ctx, in)
	if err == nil || alreadyExists(err) {
		return nil
	}
	return fmt.Errorf("create bucket: %w", err)
}

func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noKey) || errors.As(err, &noBucket) {
		return true
	}
	return statusCode(err) == http.StatusNotFound
}

func alreadyExists(err error) bool {
	var owned *types.BucketAlreadyOwnedByYou
	var exists *types.BucketAlreadyExists
	if errors.As(err, &owned) || errors.As(err, &exists) {
		return true
	}
	return statusCode(err) == http.StatusConflict
}

func statusCode(err error) int {
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.HTTPStatusCode()
	}
	return 0
}

// logAPIError records the store's error code and message. It never reaches clients.
func logAPIError(op, bucket, key string, err error) {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		log.Printf("[S3] %s %s/%s returned %d %s: %s", op, bucket, key, statusCode(err), ae.ErrorCode(), ae.ErrorMessage())
		return
	}
	log.Printf("[S3] %s %s/%s failed: %v", op, bucket, key, err)
}
