package view

import (
	"context"
	"strings"

	"catalog-console/internal/authentication"
	"catalog-console/internal/notify"
)

// Registrar creates user accounts.
type Registrar interface {
	Register(ctx context.Context, input authentication.SignUpInput) error
}

// SignUp is the account creation form.
type SignUp struct {
	lifecycle
	registrar Registrar
	sink      notify.Sink
	nav       Navigator

	form   SignUpForm
	errors FieldErrors
}

// NewSignUp builds the view.
func NewSignUp(registrar Registrar, sink notify.Sink, nav Navigator) *SignUp {
	v := &SignUp{registrar: registrar, sink: sink, nav: nav}
	v.init()
	return v
}

// Form returns the entered values without the password.
func (v *SignUp) Form() SignUpForm {
	f := v.form
	f.Password = ""
	return f
}

func (v *SignUp) Errors() FieldErrors { return v.errors }

// Submit validates and registers the account, then navigates to the login screen.
func (v *SignUp) Submit(ctx context.Context, form SignUpForm) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)

	v.update(func() {
		v.form = form
		v.errors = nil
	})

	if err := validate.Struct(form); err != nil {
		errs := fieldErrors(err)
		v.update(func() { v.errors = errs })
		return
	}

	err := v.registrar.Register(detach(ctx), authentication.SignUpInput{
		Username:  form.Username,
		Password:  form.Password,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		v.sink.Error(ctx, notify.Message{Text: MsgSignUpFailed})
		return
	}

	v.sink.Success(ctx, notify.Message{Text: MsgSignedUp})
	v.nav.Navigate(PathLogin)
}
