package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/moklet-dev/twibbon/app"
	"github.com/moklet-dev/twibbon/internal/errors"
	"github.com/moklet-dev/twibbon/internal/publish"
	"github.com/moklet-dev/twibbon/internal/site"
)

// newS3Client builds the S3 client; replaced in tests.
var newS3Client = func(ctx context.Context, region string) (publish.PutObjectAPI, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket string
		key    string
		region string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the page and upload it to S3",
		Long: `Render the standalone page and upload it to an S3 bucket.

Credentials come from the standard AWS chain (environment, shared
config, instance role).

Examples:
  twibbon publish --bucket=twibbon-site
  twibbon publish --bucket=twibbon-site --key=features/index.html
  twibbon publish --dry-run`,
		Annotations: map[string]string{needsConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if key != "" {
				cfg.Publish.Key = key
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Publish.Bucket == "" && !dryRun {
				return errors.New(errors.CodePublishNoBucket)
			}

			ctx := cmd.Context()
			page, err := site.New(cfg, site.WithLogger(g.logger)).PageBytes(ctx, app.RuntimeInline)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(g.stdout, "would upload %d bytes to s3://%s/%s\n", len(page), cfg.Publish.Bucket, cfg.Publish.Key)
				return nil
			}

			client, err := newS3Client(ctx, cfg.Publish.Region)
			if err != nil {
				return errors.New(errors.CodePublishAWSConfig).Wrap(err)
			}
			p := publish.NewS3Publisher(client, publish.Target{
				Bucket:       cfg.Publish.Bucket,
				Key:          cfg.Publish.Key,
				CacheControl: cfg.Publish.CacheControl,
			}).WithLogger(g.logger)

			res, err := p.Publish(ctx, page)
			if err != nil {
				return err
			}
			fmt.Fprintf(g.stdout, "published s3://%s/%s (%d bytes, sha256 %s)\n", res.Bucket, res.Key, res.Size, res.SHA256[:12])
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from twibbon.json)")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default index.html)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from the AWS config chain)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render and report without uploading")

	return cmd
}
