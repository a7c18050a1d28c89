package dataset

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

// ObjectGetter is the subset of the S3 client used to fetch the dataset
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func NewS3Source(client ObjectGetter, bucket, key string) Source {
	return &s3Source{client: client, bucket: bucket, key: key}
}

// S3SourceFactory builds a client from the default AWS credential chain.
func S3SourceFactory(ctx context.Context, uri *url.URL) (Source, error) {
	bucket := uri.Host
	key := strings.TrimPrefix(uri.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 uri %q must be s3://bucket/key", uri.String())
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewS3Source(s3.NewFromConfig(cfg), bucket, key), nil
}

func (s *s3Source) Load(ctx context.Context) ([]domain.Rental, error) {
	name := fmt.Sprintf("s3://%s/%s", s.bucket, s.key)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, &domain.DataAccessError{Source: name, Err: fmt.Errorf("get object: %w", err)}
	}
	defer out.Body.Close()

	return Decode(out.Body, name)
}
