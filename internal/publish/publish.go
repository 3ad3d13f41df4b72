// Package publish uploads rendered pages to S3.
package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/memdom"
)

// ContentType of published pages.
const ContentType = "text/html; charset=utf-8"

// API is the subset of the S3 client used by Publisher.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result describes an uploaded page.
type Result struct {
	Bucket string
	Key    string
	Size   int
	ETag   string
}

// Publisher renders documents and uploads them.
type Publisher struct {
	client API
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Publisher writing to bucket under prefix.
func New(client API, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Publish renders doc and stores it at prefix+key.
func (p *Publisher) Publish(ctx context.Context, key string, doc *memdom.Document, opts memdom.RenderOptions) (Result, error) {
	if p.bucket == "" {
		return Result{}, errors.New("R210").
			WithDetail("no bucket configured").
			WithSuggestion("Pass --bucket or set publish.bucket in ruix.yaml")
	}
	if key == "" {
		return Result{}, errors.New("R210").WithDetail("empty object key")
	}

	var buf bytes.Buffer
	if err := memdom.RenderDocument(&buf, doc, opts); err != nil {
		return Result{}, errors.New("R210").Wrap(err)
	}

	res := Result{Bucket: p.bucket, Key: p.prefix + key, Size: buf.Len()}
	out, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(res.Bucket),
		Key:          aws.String(res.Key),
		Body:         bytes.NewReader(buf.Bytes()),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String("no-cache"),
		Metadata: map[string]string{
			"generator":    "ruix",
			"published-at": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Result{}, errors.New("R210").
			WithDetailf("upload to s3://%s/%s", res.Bucket, res.Key).
			Wrap(err)
	}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}

	p.logger.Info("page published", "bucket", res.Bucket, "key", res.Key, "bytes", res.Size)
	return res, nil
}

// ClientOptions configures NewClient.
type ClientOptions struct {
	Region string
	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string
	// PathStyle addresses buckets by path instead of host name.
	PathStyle bool
}

// NewClient creates an S3 client using static credentials from the
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN
// environment variables. An empty region falls back to AWS_REGION.
func NewClient(opts ClientOptions) *s3.Client {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	return s3.New(s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		UsePathStyle: opts.PathStyle,
		BaseEndpoint: endpoint(opts.Endpoint),
	})
}

func endpoint(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("R210").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
