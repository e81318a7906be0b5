package probe

import "context"

// Result is the outcome of one HTTP exchange against a service URL.
//
// Responded is false when no HTTP response was obtained at all (DNS
// failure, refused connection, timeout); StatusCode and Body are only
// meaningful when it is true.
type Result struct {
	Responded  bool
	StatusCode int
	Body       string
	LatencyMS  float64
}

// Checker performs a single probe for a given target URL. Transport
// errors never surface as Go errors; they come back as a non-response.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
