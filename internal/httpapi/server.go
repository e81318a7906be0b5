// Package httpapi exposes a small read-only view of the monitored
// services for the serve command: what the store holds, plus an
// optional live classification pass.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rdhillon/statuswatch/internal/domain"
	"github.com/rdhillon/statuswatch/internal/probe"
	"github.com/rdhillon/statuswatch/internal/runner"
	"github.com/rdhillon/statuswatch/internal/status"
)

type Server struct {
	Logger  *zap.Logger
	Source  runner.Source
	Checker probe.Checker
	Timeout time.Duration
}

func NewServer(l *zap.Logger, source runner.Source, checker probe.Checker, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Server{Logger: l, Source: source, Checker: checker, Timeout: timeout}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/services", s.handleListServices)

	return r
}

type serviceRow struct {
	ID         domain.ServiceID `json:"id"`
	URL        string           `json:"url"`
	Status     domain.Status    `json:"status"`
	HTTPStatus int              `json:"http_status,omitempty"`
	LatencyMS  float64          `json:"latency_ms,omitempty"`
}

// handleListServices returns the stored records. With ?live=1 each
// service is probed and classified fresh; nothing is persisted either
// way.
func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.Source.ListServices(r.Context())
	if err != nil {
		s.Logger.Warn("api_list_error", zap.Error(err))
		http.Error(w, "service source unavailable", http.StatusBadGateway)
		return
	}

	live := r.URL.Query().Get("live") == "1"
	rows := make([]serviceRow, 0, len(services))
	for _, svc := range services {
		row := serviceRow{ID: svc.ID, URL: svc.URL, Status: svc.LastRecordedStatus}
		if live {
			cctx, cancel := context.WithTimeout(r.Context(), s.Timeout)
			res := s.Checker.Check(cctx, svc.URL)
			cancel()
			row.Status = status.Classify(res, svc.Identifier)
			row.HTTPStatus = res.StatusCode
			row.LatencyMS = res.LatencyMS
		}
		rows = append(rows, row)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
