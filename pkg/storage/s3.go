package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
)

// S3Client is the subset of *s3.Client used by S3.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config locates the datasets in a bucket. Objects are read from
// Prefix + "<dataset>.yaml".
type S3Config struct {
	Bucket         string
	Region         string
	Prefix         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // S3-compatible services such as MinIO
	ForcePathStyle bool
}

// S3 serves dataset files from an S3 bucket. It is safe for concurrent use.
type S3 struct {
	client  S3Client
	bucket  string
	prefix  string
	timeout time.Duration
}

type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3.Options)
	timeout       time.Duration
}

// WithS3Client uses a pre-configured client instead of building one.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) { o.configOptions = append(o.configOptions, option) }
}

func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) { o.clientOptions = append(o.clientOptions, option) }
}

// WithS3Timeout bounds each dataset download, body included.
func WithS3Timeout(timeout time.Duration) S3Option {
	return func(o *s3Options) { o.timeout = timeout }
}

// NewS3 builds an S3 source. Bucket and Region are required.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.clientOptions {
				opt(o)
			}
		})
	}

	return &S3{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  normalizePrefix(cfg.Prefix),
		timeout: options.timeout,
	}, nil
}

// Key returns the object key a dataset file is read from.
func (s *S3) Key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %s", dataset.ErrDatasetNotFound, name)
	}

	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.Key(name)),
	})
	if err != nil {
		cancel()
		return nil, classifyS3Error(err, name)
	}
	if out.Body == nil {
		cancel()
		return nil, fmt.Errorf("%w: %s: empty response body", dataset.ErrFailedToReadData, name)
	}
	return &cancelOnClose{ReadCloser: out.Body, cancel: cancel}, nil
}

// cancelOnClose keeps the request context alive until the body is consumed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return path.Clean(p) + "/"
}

// classifyS3Error maps SDK failures onto storage and dataset errors.
func classifyS3Error(err error, name string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: reading %s", ErrOperationTimeout, name)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: reading %s", ErrOperationCanceled, name)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", dataset.ErrDatasetNotFound, name)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return fmt.Errorf("%w: %s", dataset.ErrDatasetNotFound, name)
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: reading %s", ErrAccessDenied, name)
		case "RequestTimeout":
			return fmt.Errorf("%w: reading %s", ErrRequestTimeout, name)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: reading %s", ErrServiceUnavailable, name)
		}
	}

	return fmt.Errorf("%w: %s: %v", dataset.ErrFailedToReadData, name, err)
}
