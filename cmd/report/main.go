package main

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/services/config"
	"github.com/de-tools/cloud-sentry/pkg/services/cost/awsce"
	"github.com/de-tools/cloud-sentry/pkg/services/notify/ses"
	"github.com/de-tools/cloud-sentry/pkg/services/pipeline"
	"github.com/de-tools/cloud-sentry/pkg/services/security/hub"
	objects3 "github.com/de-tools/cloud-sentry/pkg/store/object/s3"
	"github.com/de-tools/cloud-sentry/pkg/store/snapshot"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Run the AWS cost & security report pipeline once",
		RunE:  runReport,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	awsCfg, err := config.LoadAWS(ctx, cfg.Region)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(
		pipeline.Dependencies{
			Costs:     awsce.NewFetcher(*awsCfg),
			Findings:  hub.NewFetcher(*awsCfg),
			Email:     ses.NewSender(*awsCfg, cfg.Sender, cfg.Recipient),
			Objects:   objects3.NewStore(*awsCfg, cfg.Bucket),
			Snapshots: snapshot.NewStore(cfg.SnapshotPath),
		},
		pipeline.Settings{
			WindowDays:       cfg.WindowDays,
			MaxFindings:      cfg.MaxFindings,
			CostThresholdUSD: cfg.CostThresholdUSD,
			CallTimeout:      cfg.CallTimeout,
		},
	)

	if err := runner.Run(ctx, time.Now()); err != nil {
		return err
	}

	logger.Info().Msg("report run completed")
	return nil
}
