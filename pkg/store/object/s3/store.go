package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/cloud-sentry/pkg/store/object"
)

// API is the part of the S3 client the store uses.
type API interface {
	PutObject(
		ctx context.Context,
		input *awss3.PutObjectInput,
		opts ...func(*awss3.Options),
	) (*awss3.PutObjectOutput, error)
}

type store struct {
	client API
	bucket string
}

// NewStore creates an object store writing into a single S3 bucket.
func NewStore(cfg aws.Config, bucket string) object.Store {
	return &store{client: awss3.NewFromConfig(cfg), bucket: bucket}
}

// NewStoreWithClient creates a store around an existing client.
func NewStoreWithClient(client API, bucket string) object.Store {
	return &store{client: client, bucket: bucket}
}

func (s *store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}
