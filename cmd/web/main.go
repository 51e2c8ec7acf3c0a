package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/server"
	"github.com/de-tools/cloud-sentry/pkg/services/config"
	"github.com/de-tools/cloud-sentry/pkg/services/cost/awsce"
	"github.com/de-tools/cloud-sentry/pkg/services/dashboard"
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
		Use:   "web",
		Short: "Start the Cloud Sentry dashboard server",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
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

	if cfg.ServerHost == "" || cfg.ServerPort == "" {
		return fmt.Errorf("missing required configuration: SERVER_HOST, SERVER_PORT")
	}

	awsCfg, err := config.LoadAWS(ctx, cfg.Region)
	if err != nil {
		return err
	}

	snapshots := snapshot.NewStore(cfg.SnapshotPath)

	runner := pipeline.NewRunner(
		pipeline.Dependencies{
			Costs:     awsce.NewFetcher(*awsCfg),
			Findings:  hub.NewFetcher(*awsCfg),
			Email:     ses.NewSender(*awsCfg, cfg.Sender, cfg.Recipient),
			Objects:   objects3.NewStore(*awsCfg, cfg.Bucket),
			Snapshots: snapshots,
		},
		pipeline.Settings{
			WindowDays:       cfg.WindowDays,
			MaxFindings:      cfg.MaxFindings,
			CostThresholdUSD: cfg.CostThresholdUSD,
			CallTimeout:      cfg.CallTimeout,
		},
	)

	// Prime the dashboard so the first page view has data. A failed run is
	// operator-visible via logs only, the server still starts and serves
	// whatever snapshot was last persisted.
	if err := runner.Run(ctx, time.Now()); err != nil {
		logger.Error().Err(err).Msg("initial report run failed")
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Dependencies: server.Dependencies{
			Renderer: dashboard.NewRenderer(snapshots),
		},
	})

	return webAPI.Start()
}
