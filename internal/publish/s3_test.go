package publish

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	twerrors "github.com/moklet-dev/twibbon/internal/errors"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{ETag: aws.String(`"abc"`)}, nil
}

func quiet(p *S3Publisher) *S3Publisher {
	return p.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublish(t *testing.T) {
	fake := &fakeS3{}
	p := quiet(NewS3Publisher(fake, Target{Bucket: "site", Key: "index.html", CacheControl: "max-age=60"}))
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	res, err := p.Publish(context.Background(), []byte("<html></html>"))
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if aws.ToString(fake.in.Bucket) != "site" || aws.ToString(fake.in.Key) != "index.html" {
		t.Errorf("target = %s/%s", aws.ToString(fake.in.Bucket), aws.ToString(fake.in.Key))
	}
	if aws.ToString(fake.in.ContentType) != ContentType {
		t.Errorf("ContentType = %q", aws.ToString(fake.in.ContentType))
	}
	if aws.ToString(fake.in.CacheControl) != "max-age=60" {
		t.Errorf("CacheControl = %q", aws.ToString(fake.in.CacheControl))
	}
	if string(fake.body) != "<html></html>" {
		t.Errorf("body = %q", fake.body)
	}
	if fake.in.Metadata["publish-time"] != "2026-01-02T03:04:05Z" {
		t.Errorf("metadata = %v", fake.in.Metadata)
	}
	if res.ETag != `"abc"` || res.Size != 13 || len(res.SHA256) != 64 {
		t.Errorf("result = %+v", res)
	}
	if fake.in.Metadata["sha256"] != res.SHA256 {
		t.Error("metadata digest should match result")
	}
}

func TestPublishWithoutCacheControl(t *testing.T) {
	fake := &fakeS3{}
	p := quiet(NewS3Publisher(fake, Target{Bucket: "site", Key: "index.html"}))

	if _, err := p.Publish(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if fake.in.CacheControl != nil {
		t.Errorf("CacheControl = %q, want unset", aws.ToString(fake.in.CacheControl))
	}
}

func TestPublishNoBucket(t *testing.T) {
	fake := &fakeS3{}
	p := quiet(NewS3Publisher(fake, Target{Key: "index.html"}))

	_, err := p.Publish(context.Background(), []byte("x"))
	if !twerrors.Is(err, twerrors.New(twerrors.CodePublishNoBucket)) {
		t.Fatalf("err = %v, want E301", err)
	}
	if fake.in != nil {
		t.Error("no upload should be attempted")
	}
}

func TestPublishUploadError(t *testing.T) {
	cause := errors.New("access denied")
	p := quiet(NewS3Publisher(&fakeS3{err: cause}, Target{Bucket: "site", Key: "index.html"}))

	_, err := p.Publish(context.Background(), []byte("x"))
	if !errors.Is(err, cause) {
		t.Errorf("cause lost: %v", err)
	}
	var e *twerrors.Error
	if !errors.As(err, &e) || e.Code != twerrors.CodePublish || e.Detail != "s3://site/index.html" {
		t.Errorf("err = %+v", e)
	}
}
