package publish

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/memdom"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	data, _ := io.ReadAll(in.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{ETag: aws.String(`"abc"`)}, nil
}

func testDocument() *memdom.Document {
	doc := memdom.NewDocument()
	doc.Body().AppendChild(doc.CreateText("hello"))
	return doc
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublish(t *testing.T) {
	fake := &fakeS3{}
	p := New(fake, "pages", "site/", quietLogger())
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	res, err := p.Publish(context.Background(), "index.html", testDocument(), memdom.RenderOptions{})
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	want := "<!DOCTYPE html>\n<html><head></head><body>hello</body></html>\n"
	if fake.body != want {
		t.Errorf("body = %q, want %q", fake.body, want)
	}
	if got := aws.ToString(fake.input.Bucket); got != "pages" {
		t.Errorf("Bucket = %q, want %q", got, "pages")
	}
	if got := aws.ToString(fake.input.Key); got != "site/index.html" {
		t.Errorf("Key = %q, want %q", got, "site/index.html")
	}
	if got := aws.ToString(fake.input.ContentType); got != ContentType {
		t.Errorf("ContentType = %q, want %q", got, ContentType)
	}
	if got := fake.input.Metadata["published-at"]; got != "2026-01-02T03:04:05Z" {
		t.Errorf("published-at = %q", got)
	}
	if res != (Result{Bucket: "pages", Key: "site/index.html", Size: len(want), ETag: `"abc"`}) {
		t.Errorf("Result = %+v", res)
	}
}

func TestPublishErrors(t *testing.T) {
	boom := stderrors.New("boom")
	tests := []struct {
		name   string
		bucket string
		key    string
		err    error
	}{
		{"no bucket", "", "index.html", nil},
		{"no key", "pages", "", nil},
		{"upload", "pages", "index.html", boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&fakeS3{err: tt.err}, tt.bucket, "", quietLogger())
			_, err := p.Publish(context.Background(), tt.key, testDocument(), memdom.RenderOptions{})
			if !errors.HasCode(err, "R210") {
				t.Errorf("Publish() error = %v, want R210", err)
			}
			if tt.err != nil && !stderrors.Is(err, boom) {
				t.Errorf("Publish() error %v does not wrap %v", err, boom)
			}
		})
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := envCredentials(context.Background()); err == nil {
		t.Error("envCredentials() succeeded without variables")
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")
	creds, err := envCredentials(context.Background())
	if err != nil {
		t.Fatalf("envCredentials() error: %v", err)
	}
	if creds.AccessKeyID != "id" || creds.SecretAccessKey != "secret" || creds.SessionToken != "token" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestNewClient(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-central-1")
	c := NewClient(ClientOptions{Endpoint: "http://localhost:9000", PathStyle: true})
	o := c.Options()
	if o.Region != "eu-central-1" {
		t.Errorf("Region = %q, want %q", o.Region, "eu-central-1")
	}
	if aws.ToString(o.BaseEndpoint) != "http://localhost:9000" || !o.UsePathStyle {
		t.Errorf("endpoint = %q, path style = %v", aws.ToString(o.BaseEndpoint), o.UsePathStyle)
	}
	if !strings.HasPrefix(aws.ToString(o.BaseEndpoint), "http://") {
		t.Error("unexpected endpoint scheme")
	}
}
