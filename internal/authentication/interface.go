package authentication

import "context"

// UseCase signs users in and creates accounts.
type UseCase interface {
	Auth(ctx context.Context, creds Credentials) (Session, error)
	Register(ctx context.Context, input SignUpInput) error
}
