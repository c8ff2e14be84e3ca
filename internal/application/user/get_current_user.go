package user

import (
	"context"
	"fmt"
)

// GetCurrentUserUseCase loads the account of the signed-in actor.
type GetCurrentUserUseCase struct {
	userRepo Repository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase.
func NewGetCurrentUserUseCase(userRepo Repository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

// Execute returns the actor's account.
//
// It returns appcore.ErrUserNotAuthenticated when no actor is bound. A bound
// actor that resolves to no account yields ErrUserNotFound: unlike a profile
// lookup by username, a dangling identity is an anomaly, not a normal absence.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (Result, error) {
	userID, err := query.EnsureAuthenticated()
	if err != nil {
		return Result{}, err
	}

	usr, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to find user by id: %w", err)
	}
	if usr == nil {
		return Result{}, ErrUserNotFound
	}

	return Result{User: usr}, nil
}
