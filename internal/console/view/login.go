package view

import (
	"context"

	"catalog-console/internal/authentication"
)

// LoadingFlag exposes the auth subsystem's in-flight flag.
type LoadingFlag interface {
	IsLoading() bool
}

// Authenticator is the sign-in operation as seen by the login view. It owns feedback and redirects.
type Authenticator interface {
	Auth(ctx context.Context, creds authentication.Credentials) error
}

// Login is the credential form.
type Login struct {
	lifecycle
	auth    Authenticator
	loading LoadingFlag

	username string
	errors   FieldErrors
}

// NewLogin builds the view.
func NewLogin(auth Authenticator, loading LoadingFlag) *Login {
	v := &Login{auth: auth, loading: loading}
	v.init()
	return v
}

func (v *Login) Username() string    { return v.username }
func (v *Login) Errors() FieldErrors { return v.errors }

// SubmitDisabled mirrors the loading flag.
func (v *Login) SubmitDisabled() bool {
	return v.loading.IsLoading()
}

// Submit calls the authenticator with exactly the entered pair, and only when both are non-empty.
func (v *Login) Submit(ctx context.Context, form LoginForm) {
	v.update(func() {
		v.username = form.Username
		v.errors = nil
	})

	if err := validate.Struct(form); err != nil {
		errs := fieldErrors(err)
		if _, ok := errs["username"]; ok {
			errs["username"] = "Please enter a username"
		}
		if _, ok := errs["password"]; ok {
			errs["password"] = "Please enter a password"
		}
		v.update(func() { v.errors = errs })
		return
	}

	if v.loading.IsLoading() {
		return
	}

	// The authenticator reports failures through its own sink.
	_ = v.auth.Auth(detach(ctx), authentication.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
}
