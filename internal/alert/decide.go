// Package alert decides when a freshly computed status warrants a
// notification. It only describes the notification; delivery belongs to
// the notify package.
package alert

import (
	"fmt"

	"github.com/rdhillon/statuswatch/internal/domain"
)

// Intent is a described, not-yet-delivered notification.
type Intent struct {
	ServiceID domain.ServiceID
	URL       string
	Status    domain.Status
	Body      string
}

// Decide emits an intent iff the new status differs from the last
// recorded one. A service never classified before (unset last status)
// always produces an intent; an unchanged status never does, so re-runs
// against a stable endpoint stay silent.
func Decide(svc domain.ServiceRecord, newStatus domain.Status) (Intent, bool) {
	if newStatus == svc.LastRecordedStatus {
		return Intent{}, false
	}
	return Intent{
		ServiceID: svc.ID,
		URL:       svc.URL,
		Status:    newStatus,
		Body:      fmt.Sprintf("Status for %s is %s.", svc.URL, newStatus),
	}, true
}
