package http

import (
	"catalog-console/internal/console/view"
	"catalog-console/internal/model"
	"catalog-console/internal/session"
)

type flash struct {
	Kind   string
	Text   string
	Millis int64
}

// page is the data every template header needs.
type page struct {
	Title         string
	Authenticated bool
	Username      string
	Flashes       []flash
}

func newPage(s *session.Session, title string) page {
	msgs := s.Drain()
	flashes := make([]flash, 0, len(msgs))
	for _, m := range msgs {
		flashes = append(flashes, flash{
			Kind:   string(m.Kind),
			Text:   m.Text,
			Millis: m.Duration.Milliseconds(),
		})
	}
	return page{
		Title:         title,
		Authenticated: s.Authenticated(),
		Username:      s.Username(),
		Flashes:       flashes,
	}
}

type loginPage struct {
	page
	Form           view.LoginForm
	Errors         view.FieldErrors
	SubmitDisabled bool
}

func newLoginPage(s *session.Session, v *view.Login) loginPage {
	return loginPage{
		page:           newPage(s, "Sign in"),
		Form:           view.LoginForm{Username: v.Username()},
		Errors:         v.Errors(),
		SubmitDisabled: v.SubmitDisabled(),
	}
}

type signUpPage struct {
	page
	Form   view.SignUpForm
	Errors view.FieldErrors
}

func newSignUpPage(s *session.Session, v *view.SignUp) signUpPage {
	return signUpPage{
		page:   newPage(s, "Sign up"),
		Form:   v.Form(),
		Errors: v.Errors(),
	}
}

type listingPage struct {
	page
	Products  []model.Product
	Failed    bool
	Empty     bool
	ModalOpen bool
	Selected  *model.Product
}

func newListingPage(s *session.Session, v *view.Listing) listingPage {
	st := v.State()
	return listingPage{
		page:      newPage(s, "Products"),
		Products:  st.Products,
		Failed:    st.Phase == view.PhaseFailed,
		Empty:     st.Empty(),
		ModalOpen: v.ModalOpen(),
		Selected:  v.Selected(),
	}
}

type registrationPage struct {
	page
	Editing        bool
	Action         string
	Form           view.ProductForm
	Errors         view.FieldErrors
	SubmitDisabled bool
}

func newRegistrationPage(s *session.Session, v *view.Registration) registrationPage {
	title := "New product"
	action := view.PathRegistration
	editing := v.Mode() == view.ModeEdit
	if editing {
		title = "Edit product"
		action = view.RegistrationPath(v.ID())
	}
	return registrationPage{
		page:           newPage(s, title),
		Editing:        editing,
		Action:         action,
		Form:           v.Form(),
		Errors:         v.Errors(),
		SubmitDisabled: v.SubmitDisabled(),
	}
}
