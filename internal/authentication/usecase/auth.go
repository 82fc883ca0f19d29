package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"catalog-console/internal/authentication"
	"catalog-console/pkg/catalogapi"
)

// Auth exchanges credentials for a session.
func (uc *implUseCase) Auth(ctx context.Context, creds authentication.Credentials) (authentication.Session, error) {
	res, err := uc.api.Login(ctx, catalogapi.LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		uc.l.Warnf(ctx, "authentication.usecase.Auth username=%s: %v", creds.Username, err)
		return authentication.Session{}, fmt.Errorf("%w: %v", authentication.ErrAuth, err)
	}

	access := res.AccessToken
	if access == "" {
		access = res.Token
	}
	if access == "" {
		return authentication.Session{}, fmt.Errorf("%w: response carried no token", authentication.ErrAuth)
	}

	username := res.Username
	if username == "" {
		username = creds.Username
	}

	return authentication.Session{
		UserID:   res.ID,
		Username: username,
		Token: &oauth2.Token{
			AccessToken:  access,
			RefreshToken: res.RefreshToken,
			TokenType:    "Bearer",
			Expiry:       uc.expiry(ctx, access),
		},
	}, nil
}

// expiry reads the exp claim without verifying the signature; the console never holds the signing key.
func (uc *implUseCase) expiry(ctx context.Context, access string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		uc.l.Debugf(ctx, "authentication.usecase.expiry: token is not a JWT: %v", err)
		return uc.now().Add(uc.defaultTTL)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return uc.now().Add(uc.defaultTTL)
	}
	return exp.Time
}
