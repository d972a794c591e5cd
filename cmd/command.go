// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/env"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "logarchive",
	Short: "logarchive - serverless log archive functions",
	Long: `logarchive runs the steps of the log aggregation workflow: bucket discovery,
archive key derivation and deletion of archived originals.

Each function is a subcommand. Inside the Lambda runtime the function named by
the handler setting is served; elsewhere a single event is read from a file or
stdin and the result is printed as JSON.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
	RunE: func(cmd *cobra.Command, args []string) error {
		if env.InLambda() {
			name := env.LambdaHandler()
			if _, ok := functionCmds[name]; !ok {
				return fmt.Errorf("unknown handler %q", name)
			}
			return serveLambda(cmd, name)
		}
		return cmd.Help()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&config.ConfigurationFileDirectory, "config_dir", ".", "Directory for configuration files")
	f.String("log_level", "", "Log level (trace, debug, info, warn, error)")

	f.String("tmp_logs_bucket_name", "", "Bucket holding manifests (or set TMP_LOGS_BUCKET_NAME)")
	f.String("dest_logs_bucket_name", "", "Destination logs bucket (or set DEST_LOGS_BUCKET_NAME)")
	f.String("final_aggregation_prefix", "", "Root prefix of archive keys (or set FINAL_AGGREGATION_PREFIX)")
	f.String("org_id", "", "AWS Organizations id (or set ORG_ID)")
	f.String("s3.region", "", "S3 region (or set AWS_REGION)")
	f.String("s3.endpoint", "", "S3 endpoint override, e.g. http://localhost:4566")
	f.Bool("s3.path_style", false, "Use path-style S3 addressing")
	f.String("s3.role_arn", "", "IAM role to assume for S3 access")
	f.Int("delete.batch_size", config.MaxDeleteBatchSize, "Versions per DeleteObjects call")
	f.String("metrics.pushgateway_url", "", "Prometheus Pushgateway URL")

	viper.BindPFlags(f)
}

// initialize loads the optional config file and applies logging settings
// before any subcommand runs.
func initialize(cmd *cobra.Command, args []string) error {
	config.LoadConfiguration("logarchive", false)

	flags := NewFlagLoader(cmd)
	if lvl := flags.String("log_level"); lvl != "" {
		level, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", lvl, err)
		}
		logger.SetLevel(level)
	}

	if client := sentry.CurrentHub().Client(); client != nil && client.Options().Dsn != "" {
		logger.AddHook(logger.NewSentryHook(nil))
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
