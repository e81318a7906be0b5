// Package status holds the policy that turns a raw probe outcome into
// one of the five recorded labels.
package status

import (
	"strings"

	"github.com/rdhillon/statuswatch/internal/domain"
	"github.com/rdhillon/statuswatch/internal/probe"
)

// Classify maps one probe outcome to a status label.
//
// Precedence: a 2xx/3xx with the identifier present in the body wins,
// then the identifier-missing case, then client errors, then the 503
// maintenance carve-out. Everything else, including no response at all,
// is Down.
func Classify(res probe.Result, identifier string) domain.Status {
	if !res.Responded {
		return domain.StatusDown
	}
	switch {
	case res.StatusCode >= 200 && res.StatusCode < 400 && containsFold(res.Body, identifier):
		return domain.StatusOperational
	case res.StatusCode >= 200 && res.StatusCode < 400:
		// Server answered fine but the expected marker is missing:
		// wrong page, default page, or the marker text changed.
		return domain.StatusDoubtful
	case res.StatusCode >= 400 && res.StatusCode < 500:
		return domain.StatusWarning
	case res.StatusCode == 503:
		return domain.StatusMaintenance
	default:
		return domain.StatusDown
	}
}

func containsFold(body, marker string) bool {
	return strings.Contains(strings.ToLower(body), strings.ToLower(marker))
}
