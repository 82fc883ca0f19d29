package catalogapi

import (
	"context"

	"golang.org/x/oauth2"
)

type tokenKey struct{}

// WithToken attaches the session token; requests made with the returned ctx send it as a bearer token.
func WithToken(ctx context.Context, tok *oauth2.Token) context.Context {
	return context.WithValue(ctx, tokenKey{}, tok)
}

// TokenFromContext returns the token attached by WithToken, or nil.
func TokenFromContext(ctx context.Context) *oauth2.Token {
	tok, _ := ctx.Value(tokenKey{}).(*oauth2.Token)
	return tok
}
