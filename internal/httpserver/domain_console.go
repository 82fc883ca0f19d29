package httpserver

import (
	"context"

	consoleHTTP "catalog-console/internal/console/delivery/http"
)

// setupConsoleDomain registers the console pages.
//
// Pattern to follow when adding a new domain:
//  1. Build its services in cmd/api and pass them through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(srv.gin, h, srv.mw)
func (srv *HTTPServer) setupConsoleDomain(ctx context.Context) error {
	srv.gin.SetHTMLTemplate(srv.templates)

	h := consoleHTTP.New(srv.l, srv.composer, srv.mw)
	consoleHTTP.RegisterRoutes(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Console domain registered")
	return nil
}
