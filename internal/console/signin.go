package console

import (
	"context"
	"errors"

	"catalog-console/internal/authentication"
	"catalog-console/internal/console/view"
	"catalog-console/internal/notify"
	"catalog-console/internal/session"
	"catalog-console/pkg/log"
)

// ErrSignInInFlight is returned when the session already runs a sign-in.
var ErrSignInInFlight = errors.New("console: sign-in already in progress")

// SignIn authenticates on behalf of one session. It owns the loading flag, the failure notification
// and the redirect after success.
type SignIn struct {
	l        log.Logger
	uc       authentication.UseCase
	s        *session.Session
	sink     notify.Sink
	nav      view.Navigator
	observer AuthObserver
}

var _ view.Authenticator = (*SignIn)(nil)

func (a *SignIn) Auth(ctx context.Context, creds authentication.Credentials) error {
	if !a.s.BeginAuth() {
		return ErrSignInInFlight
	}
	defer a.s.EndAuth()

	sess, err := a.uc.Auth(ctx, creds)
	if a.observer != nil {
		a.observer.ObserveAuth(err == nil)
	}
	if err != nil {
		a.l.Warnf(ctx, "console.SignIn.Auth: %v", err)
		a.sink.Error(ctx, notify.Message{Text: view.MsgSignInFailed})
		return err
	}

	a.s.SignIn(sess)
	a.l.Infof(ctx, "console.SignIn.Auth: user %q signed in", sess.Username)
	a.nav.Navigate(view.PathDashboard)
	return nil
}
