// Package notify defines the fire-and-forget feedback channel views use to report outcomes.
package notify

import (
	"context"
	"time"
)

// DefaultDuration is how long a message stays visible unless configured otherwise.
const DefaultDuration = 5 * time.Second

// Kind tells success and error messages apart.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one transient notification.
type Message struct {
	Kind     Kind
	Text     string
	Duration time.Duration
}

// Sink renders transient feedback. Callers never wait on or inspect the outcome.
type Sink interface {
	Success(ctx context.Context, msg Message)
	Error(ctx context.Context, msg Message)
}
