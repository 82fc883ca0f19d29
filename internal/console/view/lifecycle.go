package view

import (
	"context"
	"sync/atomic"
)

// lifecycle is the liveness guard every view embeds. A view is live from construction until Unmount.
type lifecycle struct {
	mounted atomic.Bool
}

func (lc *lifecycle) init() {
	lc.mounted.Store(true)
}

// Unmount tears the view down. Calls still in flight complete, but their results are dropped.
func (lc *lifecycle) Unmount() {
	lc.mounted.Store(false)
}

// Alive reports whether the view has not been torn down.
func (lc *lifecycle) Alive() bool {
	return lc.mounted.Load()
}

// update runs fn only while the view is live.
func (lc *lifecycle) update(fn func()) bool {
	if !lc.Alive() {
		return false
	}
	fn()
	return true
}

// detach strips cancellation so a service call runs to completion even if the caller goes away.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
