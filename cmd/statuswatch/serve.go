package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdhillon/statuswatch/internal/config"
	"github.com/rdhillon/statuswatch/internal/httpapi"
	"github.com/rdhillon/statuswatch/internal/logging"
	"github.com/rdhillon/statuswatch/internal/notion"
	"github.com/rdhillon/statuswatch/internal/probe"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only status API",
	Long: `Expose the monitored services over HTTP:

  GET /healthz              liveness
  GET /api/services         services with their recorded statuses
  GET /api/services?live=1  probe and classify fresh (nothing persisted)

Runs until interrupted (Ctrl+C) or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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
	api := httpapi.NewServer(logger, store, probe.NewHTTPChecker(cfg.ProbeTimeout), cfg.ProbeTimeout)

	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api_listen", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("api_shutdown")
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shCtx)
}
