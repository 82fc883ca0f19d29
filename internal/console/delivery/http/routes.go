package http

import (
	"github.com/gin-gonic/gin"

	"catalog-console/internal/middleware"
)

// RegisterRoutes maps the console pages. Product pages require a signed-in session.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	pages := r.Group("", mw.Session())
	{
		pages.GET("/", h.LoginPage)
		pages.POST("/", h.Login)
		pages.GET("/sign-up", h.SignUpPage)
		pages.POST("/sign-up", h.SignUp)
		pages.POST("/logout", h.Logout)
	}

	auth := pages.Group("", mw.RequireAuth())
	{
		auth.GET("/dashboard", h.Dashboard)
		auth.GET("/products", h.Listing)
		auth.POST("/products/:id/delete", h.Delete)
		auth.GET("/products/:id/edit", h.Edit)
		auth.GET("/products/register", h.RegistrationPage)
		auth.POST("/products/register", h.Register)
	}
}
