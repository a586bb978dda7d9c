package service

import "context"

// EmailSender defines the interface for outbound mail delivery.
// It is an optional capability: the service may run without one, and
// operations that need it must treat its absence as a handled condition.
type EmailSender interface {
	// Send delivers a message to the given address.
	Send(ctx context.Context, to, subject, body string) error
}
