package session

import (
	"context"
	"time"

	"catalog-console/internal/notify"
	"catalog-console/pkg/log"
)

// FlashSink queues notifications on a session; they are shown on the next rendered page.
type FlashSink struct {
	s        *Session
	l        log.Logger
	fallback time.Duration
}

var _ notify.Sink = (*FlashSink)(nil)

// NewFlashSink returns a sink for s. Messages without a duration get fallback.
func NewFlashSink(s *Session, l log.Logger, fallback time.Duration) *FlashSink {
	if fallback <= 0 {
		fallback = notify.DefaultDuration
	}
	return &FlashSink{s: s, l: l, fallback: fallback}
}

func (f *FlashSink) Success(ctx context.Context, msg notify.Message) {
	f.push(ctx, notify.KindSuccess, msg)
}

func (f *FlashSink) Error(ctx context.Context, msg notify.Message) {
	f.push(ctx, notify.KindError, msg)
}

func (f *FlashSink) push(ctx context.Context, kind notify.Kind, msg notify.Message) {
	msg.Kind = kind
	if msg.Duration <= 0 {
		msg.Duration = f.fallback
	}
	f.l.Debugf(ctx, "session.FlashSink: %s %q", kind, msg.Text)
	f.s.Push(msg)
}
