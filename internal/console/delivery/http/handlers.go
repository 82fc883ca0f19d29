package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-console/internal/console/view"
	"catalog-console/internal/middleware"
	"catalog-console/internal/notify"
	"catalog-console/internal/session"
)

type unmounter interface {
	Unmount()
}

// mount ties v to the request: it is torn down when the client goes away or the handler returns.
func mount(c *gin.Context, v unmounter) (release func()) {
	stop := context.AfterFunc(c.Request.Context(), v.Unmount)
	return func() {
		stop()
		v.Unmount()
	}
}

func (h *handler) session(c *gin.Context) *session.Session {
	return middleware.GetSession(c)
}

// follow issues the redirect a view asked for. It reports whether one was issued.
func follow(c *gin.Context, nav *redirect) bool {
	if !nav.requested() {
		return false
	}
	c.Redirect(http.StatusSeeOther, nav.path)
	return true
}

// LoginPage godoc
// @Summary     Login page
// @Tags        Console
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Success     303 {string} string "Already signed in, redirect to /dashboard"
// @Router      / [GET]
func (h *handler) LoginPage(c *gin.Context) {
	s := h.session(c)
	if s.Authenticated() {
		c.Redirect(http.StatusSeeOther, view.PathDashboard)
		return
	}

	nav := &redirect{}
	v := h.composer.Login(s, nav)
	defer mount(c, v)()

	c.HTML(http.StatusOK, "login.html", newLoginPage(s, v))
}

// Login godoc
// @Summary     Sign in
// @Tags        Console
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       username formData string true "Username"
// @Param       password formData string true "Password"
// @Success     200 {string} string "Form with errors"
// @Success     303 {string} string "Signed in, redirect to /dashboard"
// @Router      / [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	form, err := h.processLoginReq(c)
	if err != nil {
		h.l.Warnf(ctx, "http.Login: bind: %v", err)
	}

	nav := &redirect{}
	v := h.composer.Login(s, nav)
	defer mount(c, v)()

	v.Submit(ctx, form)
	if nav.requested() && s.Authenticated() {
		h.mw.RotateSession(c)
	}
	if follow(c, nav) {
		return
	}
	c.HTML(http.StatusOK, "login.html", newLoginPage(s, v))
}

// SignUpPage godoc
// @Summary     Sign-up page
// @Tags        Console
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /sign-up [GET]
func (h *handler) SignUpPage(c *gin.Context) {
	s := h.session(c)
	v := h.composer.SignUp(s, &redirect{})
	defer mount(c, v)()

	c.HTML(http.StatusOK, "signup.html", newSignUpPage(s, v))
}

// SignUp godoc
// @Summary     Create an account
// @Tags        Console
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       username  formData string true  "Username"
// @Param       password  formData string true  "Password"
// @Param       email     formData string true  "E-mail"
// @Param       firstName formData string false "First name"
// @Param       lastName  formData string false "Last name"
// @Success     200 {string} string "Form with errors"
// @Success     303 {string} string "Account created, redirect to /"
// @Router      /sign-up [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	form, err := h.processSignUpReq(c)
	if err != nil {
		h.l.Warnf(ctx, "http.SignUp: bind: %v", err)
	}

	nav := &redirect{}
	v := h.composer.SignUp(s, nav)
	defer mount(c, v)()

	v.Submit(ctx, form)
	if follow(c, nav) {
		return
	}
	c.HTML(http.StatusOK, "signup.html", newSignUpPage(s, v))
}

// Logout godoc
// @Summary     Sign out
// @Tags        Console
// @Success     303 {string} string "Redirect to /"
// @Router      /logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.mw.DropSession(c)
	c.Redirect(http.StatusSeeOther, view.PathLogin)
}

// Dashboard godoc
// @Summary     Dashboard
// @Tags        Console
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Success     303 {string} string "Not signed in, redirect to /"
// @Router      /dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", newPage(h.session(c), "Dashboard"))
}

// Listing godoc
// @Summary     Product listing
// @Tags        Console
// @Produce     html
// @Param       detail query int false "Open the detail modal of this product"
// @Success     200 {string} string "HTML page"
// @Success     303 {string} string "Not signed in, redirect to /"
// @Router      /products [GET]
func (h *handler) Listing(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	v := h.composer.Listing(s, &redirect{})
	defer mount(c, v)()

	v.Mount(ctx)
	if raw, ok := c.GetQuery("detail"); ok {
		id, err := processID(raw)
		if err != nil {
			h.composer.Sink(s).Error(ctx, notify.Message{Text: view.MsgInvalidProductID})
		} else {
			v.OpenDetail(ctx, id)
		}
	}

	c.HTML(http.StatusOK, "listing.html", newListingPage(s, v))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Console
// @Param       id path int true "Product ID"
// @Success     303 {string} string "Redirect to /products"
// @Router      /products/{id}/delete [POST]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	id, err := processID(c.Param("id"))
	if err != nil {
		h.composer.Sink(s).Error(ctx, notify.Message{Text: view.MsgInvalidProductID})
		c.Redirect(http.StatusSeeOther, view.PathProducts)
		return
	}

	// The follow-up GET renders the collection, so the view is torn down before the delete.
	v := h.composer.Listing(s, &redirect{})
	v.Unmount()

	v.Delete(ctx, id)
	c.Redirect(http.StatusSeeOther, view.PathProducts)
}

// Edit godoc
// @Summary     Open the edit form of a product
// @Tags        Console
// @Param       id path int true "Product ID"
// @Success     303 {string} string "Redirect to /products/register?id={id}"
// @Router      /products/{id}/edit [GET]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	id, err := processID(c.Param("id"))
	if err != nil {
		h.composer.Sink(s).Error(ctx, notify.Message{Text: view.MsgInvalidProductID})
		c.Redirect(http.StatusSeeOther, view.PathProducts)
		return
	}

	nav := &redirect{}
	v := h.composer.Listing(s, nav)
	defer mount(c, v)()

	v.Edit(id)
	follow(c, nav)
}

// RegistrationPage godoc
// @Summary     Product registration form
// @Tags        Console
// @Produce     html
// @Param       id query int false "Edit this product instead of creating one"
// @Success     200 {string} string "HTML page"
// @Router      /products/register [GET]
func (h *handler) RegistrationPage(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	v := h.composer.Registration(s, &redirect{}, c.Query("id"))
	defer mount(c, v)()

	v.Mount(ctx)
	c.HTML(http.StatusOK, "registration.html", newRegistrationPage(s, v))
}

// Register godoc
// @Summary     Create or update a product
// @Tags        Console
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       id                 query    int    false "Product ID (edit mode)"
// @Param       title              formData string true  "Title"
// @Param       description        formData string true  "Description"
// @Param       price              formData number true  "Price"
// @Param       discountPercentage formData number true  "Discount percentage"
// @Param       rating             formData number true  "Rating (0-5)"
// @Param       stock              formData int    true  "Stock"
// @Param       brand              formData string true  "Brand"
// @Param       category           formData string true  "Category"
// @Param       thumbnail          formData string false "Thumbnail URL"
// @Param       images             formData string false "Comma-separated image URLs"
// @Success     200 {string} string "Form with errors"
// @Success     303 {string} string "Saved, redirect to /products"
// @Router      /products/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	form, err := h.processProductReq(c)
	if err != nil {
		h.l.Warnf(ctx, "http.Register: bind: %v", err)
	}

	nav := &redirect{}
	v := h.composer.Registration(s, nav, c.Query("id"))
	defer mount(c, v)()

	v.Submit(ctx, form)
	if follow(c, nav) {
		return
	}
	c.HTML(http.StatusOK, "registration.html", newRegistrationPage(s, v))
}
