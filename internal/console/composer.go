// Package console wires views to their services for one browser session.
package console

import (
	"time"

	"catalog-console/internal/authentication"
	"catalog-console/internal/console/view"
	"catalog-console/internal/notify"
	"catalog-console/internal/product"
	"catalog-console/internal/session"
	"catalog-console/pkg/log"
)

// AuthObserver is told about every finished sign-in.
type AuthObserver interface {
	ObserveAuth(ok bool)
}

// Composer is the single place where concrete views are built.
type Composer struct {
	l              log.Logger
	products       product.Service
	auth           authentication.UseCase
	observer       AuthObserver
	notifyDuration time.Duration
}

// Config is the dependency bag passed to NewComposer.
type Config struct {
	Logger         log.Logger
	Products       product.Service
	Auth           authentication.UseCase
	AuthObserver   AuthObserver
	NotifyDuration time.Duration
}

// NewComposer creates a Composer.
func NewComposer(cfg Config) *Composer {
	return &Composer{
		l:              cfg.Logger,
		products:       cfg.Products,
		auth:           cfg.Auth,
		observer:       cfg.AuthObserver,
		notifyDuration: cfg.NotifyDuration,
	}
}

// Sink returns the notification sink of s.
func (c *Composer) Sink(s *session.Session) notify.Sink {
	return session.NewFlashSink(s, c.l, c.notifyDuration)
}

// Listing builds the product listing for s.
func (c *Composer) Listing(s *session.Session, nav view.Navigator) *view.Listing {
	return view.NewListing(view.ListingDeps{
		Reader:  c.products,
		Deleter: c.products,
		Sink:    c.Sink(s),
		Nav:     nav,
	})
}

// Registration builds the create/edit form for s. rawID is the id query value.
func (c *Composer) Registration(s *session.Session, nav view.Navigator, rawID string) *view.Registration {
	return view.NewRegistration(view.RegistrationDeps{
		Reader:  c.products,
		Creator: c.products,
		Updater: c.products,
		Sink:    c.Sink(s),
		Nav:     nav,
		Gate:    s,
	}, rawID)
}

// Login builds the login form for s.
func (c *Composer) Login(s *session.Session, nav view.Navigator) *view.Login {
	return view.NewLogin(c.SignIn(s, nav), s)
}

// SignUp builds the account creation form for s.
func (c *Composer) SignUp(s *session.Session, nav view.Navigator) *view.SignUp {
	return view.NewSignUp(c.auth, c.Sink(s), nav)
}

// SignIn returns the authenticator bound to s.
func (c *Composer) SignIn(s *session.Session, nav view.Navigator) *SignIn {
	return &SignIn{
		l:        c.l,
		uc:       c.auth,
		s:        s,
		sink:     c.Sink(s),
		nav:      nav,
		observer: c.observer,
	}
}
