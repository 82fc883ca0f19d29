package middleware

import (
	"time"

	"catalog-console/config"
	"catalog-console/internal/session"
	"catalog-console/pkg/log"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

type Middleware struct {
	l             log.Logger
	sessions      *session.Store
	sessionConfig config.SessionConfig
	observer      RequestObserver
}

func New(l log.Logger, sessions *session.Store, sessionConfig config.SessionConfig, observer RequestObserver) Middleware {
	return Middleware{
		l:             l,
		sessions:      sessions,
		sessionConfig: sessionConfig,
		observer:      observer,
	}
}
