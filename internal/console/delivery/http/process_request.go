package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-console/internal/console/view"
)

var errInvalidID = errors.New("invalid product id")

// processID reads a positive integer path or query value.
func processID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processLoginReq(c *gin.Context) (view.LoginForm, error) {
	var req view.LoginForm
	err := c.ShouldBind(&req)
	return req, err
}

func (h *handler) processSignUpReq(c *gin.Context) (view.SignUpForm, error) {
	var req view.SignUpForm
	err := c.ShouldBind(&req)
	return req, err
}

func (h *handler) processProductReq(c *gin.Context) (view.ProductForm, error) {
	var req view.ProductForm
	err := c.ShouldBind(&req)
	return req, err
}
