package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rdhillon/statuswatch/internal/config"
	"github.com/rdhillon/statuswatch/internal/logging"
	"github.com/rdhillon/statuswatch/internal/notify"
	"github.com/rdhillon/statuswatch/internal/notion"
	"github.com/rdhillon/statuswatch/internal/probe"
	"github.com/rdhillon/statuswatch/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Perform one monitoring pass over all services",
	Long: `Fetch the service list from Notion, probe and classify every
service, write the new statuses back, and notify on changes.

Individual service failures (unreachable endpoint, failed status write,
failed notification) are logged and do not affect the exit code; the
command fails only when the service list itself cannot be fetched.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()
	cfg := config.FromEnv()
	if cfg.NotionToken == "" || cfg.NotionDatabaseID == "" {
		return errors.New("NOTION_API_TOKEN and NOTION_DATABASE_ID must be set")
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID, logger)

	var checker probe.Checker = probe.NewHTTPChecker(cfg.ProbeTimeout)
	if cfg.RetryAttempts > 1 {
		checker = &probe.RetryChecker{
			Inner:    checker,
			Attempts: cfg.RetryAttempts,
			Backoff:  cfg.RetryBackoff,
		}
	}

	r := runner.New(
		logger,
		store,
		store,
		checker,
		notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.WhatsAppFrom),
		cfg.WhatsAppTo,
		0, // per-service bound, runner default
		cfg.Concurrency,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return r.RunOnce(ctx)
}
