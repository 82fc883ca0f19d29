package usecase

import (
	"context"
	"fmt"

	"catalog-console/internal/authentication"
	"catalog-console/pkg/catalogapi"
)

// Register creates a user account on the catalog API.
func (uc *implUseCase) Register(ctx context.Context, input authentication.SignUpInput) error {
	user, err := uc.api.AddUser(ctx, catalogapi.AddUserRequest{
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		uc.l.Warnf(ctx, "authentication.usecase.Register username=%s: %v", input.Username, err)
		return fmt.Errorf("%w: %v", authentication.ErrSignUp, err)
	}

	uc.l.Infof(ctx, "authentication.usecase.Register: created user id=%d", user.ID)
	return nil
}
