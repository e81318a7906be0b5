package probe

import (
	"context"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of a response body we keep; the content
// marker is expected near the top of the page.
const maxBodyBytes = 1 << 20

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues a GET against target. GET rather than HEAD: the
// classifier matches on the response body.
func (h *HTTPChecker) Check(ctx context.Context, target string) Result {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{Responded: false}
	}

	resp, err := h.Client.Do(req)
	if err != nil || resp == nil {
		return Result{Responded: false, LatencyMS: time.Since(start).Seconds() * 1000}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	return Result{
		Responded:  true,
		StatusCode: resp.StatusCode,
		Body:       string(body),
		LatencyMS:  time.Since(start).Seconds() * 1000, // ms
	}
}
