package notify

import "context"

// Notifier delivers a message to a destination handle and returns the
// channel's delivery ID.
type Notifier interface {
	Send(ctx context.Context, to, body string) (string, error)
}
