package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-console/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Catalog console is up"
	HealthVersion = "1.0.0"
	ServiceName   = "catalog-console"

	readyTimeout = 3 * time.Second
)

func status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the console is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Console is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, status("healthy"))
}

// readyCheck reports ready once the catalog API answers.
// @Summary Readiness Check
// @Description Check that the catalog API is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Console is ready"
// @Failure 503 {object} response.Resp "Catalog API unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := srv.ready(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "catalog API unreachable",
				Data:      status("not_ready"),
			})
			return
		}
	}
	response.OK(c, status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Console is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, status("alive"))
}
