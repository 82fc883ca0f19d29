package http

import (
	"catalog-console/internal/console"
	"catalog-console/internal/middleware"
	"catalog-console/pkg/log"
)

type handler struct {
	l        log.Logger
	composer *console.Composer
	mw       middleware.Middleware
}

// New creates the HTTP handler of the console pages.
func New(l log.Logger, composer *console.Composer, mw middleware.Middleware) *handler {
	return &handler{
		l:        l,
		composer: composer,
		mw:       mw,
	}
}
