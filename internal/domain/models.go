package domain

// ServiceID is the identifier the external store assigns to a monitored
// service (a Notion page ID). Opaque to us.
type ServiceID string

// ServiceRecord is one monitored service as read from the services
// database at the start of a run. LastRecordedStatus is whatever the
// previous run wrote; StatusUnset for a service never classified before.
type ServiceRecord struct {
	ID                 ServiceID `json:"id"`
	URL                string    `json:"url"`
	Identifier         string    `json:"identifier"`
	LastRecordedStatus Status    `json:"last_recorded_status"`
}
