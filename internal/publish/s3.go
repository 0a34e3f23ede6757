// Package publish uploads the rendered page to S3.
//
// Example usage:
//
//	cfg, _ := awsconfig.LoadDefaultConfig(ctx)
//	p := publish.NewS3Publisher(s3.NewFromConfig(cfg), publish.Target{Bucket: "site", Key: "index.html"})
//	res, err := p.Publish(ctx, html)
package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/moklet-dev/twibbon/internal/errors"
)

// ContentType is the media type of published pages.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of the S3 client used by the publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Target is where a page is published.
type Target struct {
	Bucket       string
	Key          string
	CacheControl string
}

// Result describes a completed upload.
type Result struct {
	Bucket string
	Key    string
	ETag   string
	SHA256 string
	Size   int
}

// S3Publisher uploads pages to one bucket/key.
type S3Publisher struct {
	client PutObjectAPI
	target Target
	logger *slog.Logger
	now    func() time.Time
}

// NewS3Publisher creates a publisher for target.
func NewS3Publisher(client PutObjectAPI, target Target) *S3Publisher {
	return &S3Publisher{
		client: client,
		target: target,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// WithLogger replaces the publisher's logger.
func (p *S3Publisher) WithLogger(l *slog.Logger) *S3Publisher {
	p.logger = l
	return p
}

// Publish uploads page as the target object.
func (p *S3Publisher) Publish(ctx context.Context, page []byte) (*Result, error) {
	if p.target.Bucket == "" {
		return nil, errors.New(errors.CodePublishNoBucket)
	}

	sum := sha256.Sum256(page)
	digest := hex.EncodeToString(sum[:])

	in := &s3.PutObjectInput{
		Bucket:      aws.String(p.target.Bucket),
		Key:         aws.String(p.target.Key),
		Body:        bytes.NewReader(page),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"sha256":       digest,
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	}
	if p.target.CacheControl != "" {
		in.CacheControl = aws.String(p.target.CacheControl)
	}

	out, err := p.client.PutObject(ctx, in)
	if err != nil {
		return nil, errors.New(errors.CodePublish).
			WithDetail("s3://" + p.target.Bucket + "/" + p.target.Key).
			Wrap(err)
	}

	res := &Result{
		Bucket: p.target.Bucket,
		Key:    p.target.Key,
		ETag:   aws.ToString(out.ETag),
		SHA256: digest,
		Size:   len(page),
	}
	p.logger.Info("published page",
		"bucket", res.Bucket,
		"key", res.Key,
		"bytes", res.Size,
		"etag", res.ETag,
	)
	return res, nil
}
