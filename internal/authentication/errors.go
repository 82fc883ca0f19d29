package authentication

import "errors"

var (
	// ErrAuth covers every sign-in failure: bad credentials and unreachable server alike.
	ErrAuth   = errors.New("authentication failed")
	ErrSignUp = errors.New("sign-up failed")
)
