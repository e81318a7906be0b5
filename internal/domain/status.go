package domain

// Status is the label recorded for a service after a probe.
type Status string

const (
	StatusOperational Status = "Operational"
	StatusDoubtful    Status = "Doubtful"
	StatusWarning     Status = "Warning"
	StatusMaintenance Status = "Maintenance"
	StatusDown        Status = "Down"
)

// StatusUnset marks a service that has never been classified.
const StatusUnset Status = ""

// Valid reports whether s is one of the five recorded labels.
func (s Status) Valid() bool {
	switch s {
	case StatusOperational, StatusDoubtful, StatusWarning, StatusMaintenance, StatusDown:
		return true
	}
	return false
}

// ParseStatus maps a stored label to a Status. Unknown labels and the
// empty string come back as StatusUnset rather than an error; a bad
// value in the store just means the next run re-records.
func ParseStatus(s string) Status {
	if st := Status(s); st.Valid() {
		return st
	}
	return StatusUnset
}
