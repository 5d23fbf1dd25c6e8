package infra

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/visitstats/dashboard/internal/app/appconfig"
)

// NewS3Client builds a client for the bucket holding the CSV export. A custom endpoint
// points it at S3 compatible storages such as R2 or MinIO.
func NewS3Client(ctx context.Context, conf *appconfig.Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.S3Region),
	}
	if conf.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, ""),
		))
	}
	if conf.S3Endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:               conf.S3Endpoint,
							SigningRegion:     conf.S3Region,
							HostnameImmutable: true,
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = conf.S3Endpoint != ""
	}), nil
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", errors.Wrap(err, "infra: invalid s3 url")
	}
	if u.Scheme != "s3" {
		return "", "", errors.Errorf("infra: expected s3:// url, got %q", raw)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.Errorf("infra: s3 url %q must name both bucket and key", raw)
	}
	return bucket, key, nil
}

// OpenCSV opens the configured CSV export, either from the local filesystem or from S3.
func OpenCSV(ctx context.Context, conf *appconfig.Config) (io.ReadCloser, error) {
	if !conf.IsS3CSV() {
		return os.Open(conf.CSVPath)
	}

	bucket, key, err := ParseS3URL(conf.CSVPath)
	if err != nil {
		return nil, err
	}

	client, err := NewS3Client(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "infra: failed to create s3 client")
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "infra: failed to get s3://%s/%s", bucket, key)
	}
	return out.Body, nil
}
