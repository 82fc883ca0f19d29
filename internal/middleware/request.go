package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-console/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags the request context with an id, taken from the client header when present.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logger writes one line per request and feeds the request observer.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		if mw.observer != nil {
			mw.observer.ObserveRequest(c.Request.Method, path, status, elapsed)
		}

		ctx := c.Request.Context()
		if status >= 500 {
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
