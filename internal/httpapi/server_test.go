package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rdhillon/statuswatch/internal/domain"
	"github.com/rdhillon/statuswatch/internal/probe"
)

type fakeSource struct {
	recs []domain.ServiceRecord
	err  error
}

func (f *fakeSource) ListServices(ctx context.Context) ([]domain.ServiceRecord, error) {
	return f.recs, f.err
}

type fakeChecker struct {
	res probe.Result
}

func (f *fakeChecker) Check(ctx context.Context, target string) probe.Result {
	return f.res
}

func newTestServer(src *fakeSource, chk probe.Checker) *httptest.Server {
	s := NewServer(zap.NewNop(), src, chk, time.Second)
	return httptest.NewServer(s.Router())
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&fakeSource{}, &fakeChecker{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}
}

func TestListServices_Stored(t *testing.T) {
	src := &fakeSource{recs: []domain.ServiceRecord{
		{ID: "a", URL: "https://a", Identifier: "acme", LastRecordedStatus: domain.StatusWarning},
	}}
	ts := newTestServer(src, &fakeChecker{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/services")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rows []serviceRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].Status != domain.StatusWarning {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestListServices_Live(t *testing.T) {
	src := &fakeSource{recs: []domain.ServiceRecord{
		{ID: "a", URL: "https://a", Identifier: "acme", LastRecordedStatus: domain.StatusDown},
	}}
	chk := &fakeChecker{res: probe.Result{Responded: true, StatusCode: 200, Body: "acme", LatencyMS: 12}}
	ts := newTestServer(src, chk)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/services?live=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rows []serviceRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0].Status != domain.StatusOperational || rows[0].HTTPStatus != 200 {
		t.Fatalf("live classification wrong: %+v", rows[0])
	}
}

func TestListServices_SourceError(t *testing.T) {
	ts := newTestServer(&fakeSource{err: errors.New("notion down")}, &fakeChecker{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/services")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("want 502, got %d", resp.StatusCode)
	}
}
