package profile

import (
	"context"
	"fmt"

	"github.com/stkrizh/conduit/internal/application/appcore"
)

// GetProfileUseCase reads a profile relative to an optional viewer.
type GetProfileUseCase struct {
	profileRepo Repository
}

// NewGetProfileUseCase creates a new GetProfileUseCase.
func NewGetProfileUseCase(profileRepo Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: profileRepo}
}

// Execute returns the profile as seen by the viewer, or Result{Profile: nil}
// when the username resolves to no account. Anonymous viewers (zero Viewer)
// always see IsFollowing=false.
func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (Result, error) {
	if err := appcore.ValidateUsername("username", query.Username); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	target, err := uc.profileRepo.GetByUsername(ctx, query.Username, query.Viewer)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get profile by username: %w", err)
	}

	return Result{Profile: target}, nil
}
