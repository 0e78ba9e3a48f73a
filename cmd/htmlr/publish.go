package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlr/internal/errors"
	"github.com/vango-dev/htmlr/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket   string
		prefix   string
		defaults bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "publish <key>",
		Short: "Upload the rendered page to S3",
		Long: `Render the hello-world page and upload it to S3 under the key.

The bucket, key prefix, region and endpoint come from the publish section
of htmlr.json. Credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  htmlr publish index.html
  htmlr publish index.html --bucket=my-site --prefix=pages/
  htmlr publish --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if cfg.Publish.Bucket == "" {
				return errors.New("E140")
			}

			client := publish.NewClient(publish.ClientOptions{
				Region:    cfg.Publish.Region,
				Endpoint:  cfg.Publish.Endpoint,
				PathStyle: cfg.Publish.PathStyle,
			})
			pub := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix)

			if list {
				keys, err := pub.List(ctx)
				if err != nil {
					return errors.New("E131").Wrap(err)
				}
				for _, key := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			}

			html, err := renderFragment(ctx, "page", defaults)
			if err != nil {
				return err
			}
			obj, err := pub.Publish(ctx, args[0], html)
			if err != nil {
				return errors.New("E131").Wrap(err)
			}
			success("Published s3://%s/%s (%d bytes)", obj.Bucket, obj.Key, obj.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target bucket (default from htmlr.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from htmlr.json)")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Use the built-in greetings instead of the content store")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List published documents instead")

	return cmd
}
