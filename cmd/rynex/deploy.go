package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/deploy"
	"github.com/razen-core/rynex/internal/errors"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the build output to S3",
		Long: `Upload the contents of the build output directory to an S3 bucket.

The target bucket and region come from the deploy section of
rynex.json, or from flags. Credentials are read from the standard
AWS environment variables (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY).

Examples:
  rynex deploy
  rynex deploy --bucket=my-site --region=us-east-1
  rynex deploy --prune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, region, prefix, prune)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target S3 bucket (default from rynex.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from rynex.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote objects missing locally")

	return cmd
}

func runDeploy(bucket, region, prefix string, prune bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if region != "" {
		cfg.Deploy.Region = region
	}
	if prefix != "" {
		cfg.Deploy.Prefix = prefix
	}

	if !cfg.HasDeployTarget() {
		return errors.New("RX402").
			WithSuggestion("Add a deploy section to rynex.json or pass --bucket and --region").
			WithExample(`{
  "deploy": {
    "bucket": "my-site",
    "region": "us-east-1"
  }
}`)
	}

	fmt.Printf("  Deploying %s/ to s3://%s\n", cfg.Build.Output, cfg.Deploy.Bucket)
	fmt.Println()

	deployer := deploy.New(deploy.NewClient(cfg.Deploy.Region), deploy.Options{
		Bucket: cfg.Deploy.Bucket,
		Prefix: cfg.Deploy.Prefix,
		Prune:  prune,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	result, err := deployer.Deploy(ctx, cfg.OutputPath())
	if err != nil {
		return err
	}

	fmt.Println()
	success("Uploaded %d files (%s) in %s", result.Uploaded, formatBytes(result.Bytes), result.Duration.Round(1000000))
	if result.Pruned > 0 {
		info("Pruned %d stale objects", result.Pruned)
	}

	return nil
}
