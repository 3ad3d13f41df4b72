package main

import (
	"github.com/spf13/cobra"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/internal/publish"
	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/telemetry"
)

// newS3Client is replaced in tests.
var newS3Client = func(opts publish.ClientOptions) publish.API {
	return publish.NewClient(opts)
}

func publishCmd() *cobra.Command {
	var (
		bucket   string
		key      string
		prefix   string
		region   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the page and upload it to S3",
		Long: `Publish renders the page and stores it in an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. Flags override the publish section of ruix.yaml.

Examples:
  ruix publish --bucket=my-site
  ruix publish --bucket=my-site --prefix=preview/ --key=books.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			for name, dst := range map[string]*string{
				"bucket":   &cfg.Publish.Bucket,
				"key":      &cfg.Publish.Key,
				"prefix":   &cfg.Publish.Prefix,
				"region":   &cfg.Publish.Region,
				"endpoint": &cfg.Publish.Endpoint,
			} {
				if flags.Changed(name) {
					*dst, _ = flags.GetString(name)
				}
			}
			if cfg.Publish.Bucket == "" {
				return errors.New("R140").
					WithDetail("--bucket is required").
					WithSuggestion("Pass --bucket or set publish.bucket in ruix.yaml")
			}

			page, err := loadPage(cfg)
			if err != nil {
				return err
			}
			doc := page.Document(telemetry.NewLogObserver(logger))

			client := newS3Client(publish.ClientOptions{
				Region:    cfg.Publish.Region,
				Endpoint:  cfg.Publish.Endpoint,
				PathStyle: cfg.Publish.PathStyle,
			})
			p := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix, logger)
			res, err := p.Publish(cmd.Context(), cfg.Publish.Key,
				doc, memdom.RenderOptions{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent})
			if err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), "Published s3://%s/%s (%d bytes)", res.Bucket, res.Key, res.Size)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default index.html)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default AWS_REGION)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")

	return cmd
}
