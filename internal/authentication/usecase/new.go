package usecase

import (
	"context"
	"time"

	"catalog-console/internal/authentication"
	"catalog-console/pkg/catalogapi"
	"catalog-console/pkg/log"
)

const DefaultTokenTTL = time.Hour

// API is the subset of the catalog client used for authentication.
type API interface {
	Login(ctx context.Context, req catalogapi.LoginRequest) (*catalogapi.LoginResponse, error)
	AddUser(ctx context.Context, req catalogapi.AddUserRequest) (*catalogapi.User, error)
}

type implUseCase struct {
	api        API
	l          log.Logger
	defaultTTL time.Duration
	now        func() time.Time
}

var _ authentication.UseCase = (*implUseCase)(nil)

// New creates the authentication use case. defaultTTL is used when the token carries no exp claim.
func New(api API, l log.Logger, defaultTTL time.Duration) *implUseCase {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &implUseCase{
		api:        api,
		l:          l,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}
