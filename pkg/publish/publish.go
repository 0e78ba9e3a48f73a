package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlr/pkg/markup"
)

// ContentType is sent with every published document.
const ContentType = "text/html; charset=utf-8"

var (
	// ErrNoCredentials is returned by EnvCredentials when the environment
	// holds no access key.
	ErrNoCredentials = errors.New("publish: no AWS credentials in environment")

	// ErrEmptyKey is returned when publishing to an empty key.
	ErrEmptyKey = errors.New("publish: empty key")
)

// API is the subset of the S3 client the publisher uses.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// Object describes a published document.
type Object struct {
	Bucket string
	Key    string
	ETag   string
	Size   int
}

// Publisher writes documents under a key prefix of one bucket.
type Publisher struct {
	api          API
	bucket       string
	prefix       string
	cacheControl string
}

// New creates a publisher. The prefix is prepended to every key as is.
func New(api API, bucket, prefix string) *Publisher {
	return &Publisher{
		api:          api,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "public, max-age=300",
	}
}

// WithCacheControl sets the Cache-Control header of published objects.
func (p *Publisher) WithCacheControl(v string) *Publisher {
	p.cacheControl = v
	return p
}

// Bucket returns the target bucket.
func (p *Publisher) Bucket() string {
	return p.bucket
}

func (p *Publisher) key(key string) string {
	return p.prefix + strings.TrimPrefix(key, "/")
}

// Publish uploads a rendered document.
func (p *Publisher) Publish(ctx context.Context, key, doc string) (*Object, error) {
	if strings.TrimPrefix(key, "/") == "" {
		return nil, ErrEmptyKey
	}
	full := p.key(key)

	out, err := p.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(full),
		Body:         strings.NewReader(doc),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String(p.cacheControl),
		Metadata: map[string]string{
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("publish: put s3://%s/%s: %w", p.bucket, full, err)
	}

	obj := &Object{Bucket: p.bucket, Key: full, Size: len(doc)}
	if out.ETag != nil {
		obj.ETag = *out.ETag
	}
	return obj, nil
}

// PublishNode renders n with tokens and uploads the result. Nothing is
// uploaded when rendering fails.
func (p *Publisher) PublishNode(ctx context.Context, key string, n *markup.Node, tokens markup.Tokens) (*Object, error) {
	doc, err := n.Render(tokens)
	if err != nil {
		return nil, err
	}
	return p.Publish(ctx, key, doc)
}

// Unpublish deletes a document.
func (p *Publisher) Unpublish(ctx context.Context, key string) error {
	full := p.key(key)
	_, err := p.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(full),
	})
	if err != nil {
		return fmt.Errorf("publish: delete s3://%s/%s: %w", p.bucket, full, err)
	}
	return nil
}

// List returns the keys under the prefix, with the prefix removed.
func (p *Publisher) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(p.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("publish: list s3://%s/%s: %w", p.bucket, p.prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				keys = append(keys, strings.TrimPrefix(*obj.Key, p.prefix))
			}
		}
	}
	return keys, nil
}
