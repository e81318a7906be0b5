// Package runner drives one monitoring pass: list the services, probe
// and classify each one, persist the new status, and notify on change.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rdhillon/statuswatch/internal/alert"
	"github.com/rdhillon/statuswatch/internal/domain"
	"github.com/rdhillon/statuswatch/internal/probe"
	"github.com/rdhillon/statuswatch/internal/status"
)

// Source lists the services to monitor.
type Source interface {
	ListServices(ctx context.Context) ([]domain.ServiceRecord, error)
}

// Sink records the freshly computed status for a service.
type Sink interface {
	UpdateStatus(ctx context.Context, id domain.ServiceID, status domain.Status) error
}

// Notifier delivers a status-change message and returns a delivery ID.
type Notifier interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type Runner struct {
	Logger      *zap.Logger
	Source      Source
	Sink        Sink
	Checker     probe.Checker
	Notifier    Notifier
	NotifyTo    string
	Timeout     time.Duration
	Concurrency int
}

func New(
	logger *zap.Logger,
	source Source,
	sink Sink,
	checker probe.Checker,
	notifier Notifier,
	notifyTo string,
	timeout time.Duration,
	concurrency int,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Runner{
		Logger:      logger,
		Source:      source,
		Sink:        sink,
		Checker:     checker,
		Notifier:    notifier,
		NotifyTo:    notifyTo,
		Timeout:     timeout,
		Concurrency: concurrency,
	}
}

// RunOnce performs one monitoring pass. It returns an error only when
// the service list itself cannot be fetched; everything past that point
// is isolated per service, logged, and never aborts the pass.
func (r *Runner) RunOnce(ctx context.Context) error {
	log := r.Logger.With(zap.String("run_id", uuid.NewString()))

	services, err := r.Source.ListServices(ctx)
	if err != nil {
		log.Error("list_services_error", zap.Error(err))
		return fmt.Errorf("list services: %w", err)
	}
	if len(services) == 0 {
		log.Info("run_no_services")
		return nil
	}

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var failures error

	for _, svc := range services {
		s := svc // avoid loop var capture
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() { <-sem }()
			defer wg.Done()

			if err := r.processService(ctx, log, s); err != nil {
				mu.Lock()
				failures = multierr.Append(failures, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if failures != nil {
		log.Warn("run_partial_failures",
			zap.Int("failed", len(multierr.Errors(failures))),
			zap.Error(failures),
		)
	}
	log.Info("run_done", zap.Int("services", len(services)))
	return nil
}

// processService is one atomic unit: probe, classify, persist, notify.
// Sink and notification failures are both logged and collected so the
// pass can report a summary, but they never stop other services.
func (r *Runner) processService(ctx context.Context, log *zap.Logger, svc domain.ServiceRecord) error {
	cctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	res := r.Checker.Check(cctx, svc.URL)
	newStatus := status.Classify(res, svc.Identifier)

	log.Debug("service_checked",
		zap.String("service_id", string(svc.ID)),
		zap.String("url", svc.URL),
		zap.Bool("responded", res.Responded),
		zap.Int("http_status", res.StatusCode),
		zap.Float64("latency_ms", res.LatencyMS),
		zap.String("status", string(newStatus)),
	)

	var errs error
	if err := r.Sink.UpdateStatus(ctx, svc.ID, newStatus); err != nil {
		log.Warn("status_update_error",
			zap.String("service_id", string(svc.ID)),
			zap.String("url", svc.URL),
			zap.Error(err),
		)
		errs = multierr.Append(errs, fmt.Errorf("update %s: %w", svc.ID, err))
	}

	intent, ok := alert.Decide(svc, newStatus)
	if !ok {
		return errs
	}

	sid, err := r.Notifier.Send(ctx, r.NotifyTo, intent.Body)
	if err != nil {
		log.Warn("notification_error",
			zap.String("service_id", string(svc.ID)),
			zap.String("url", svc.URL),
			zap.Error(err),
		)
		return multierr.Append(errs, fmt.Errorf("notify %s: %w", svc.ID, err))
	}
	log.Info("notification_sent",
		zap.String("service_id", string(svc.ID)),
		zap.String("url", svc.URL),
		zap.String("status", string(intent.Status)),
		zap.String("delivery_id", sid),
	)
	return errs
}
