package profile

import (
	"context"
	"fmt"
	"log/slog"
)

// UnfollowUseCase makes the acting user unfollow another account.
type UnfollowUseCase struct {
	profileRepo Repository
	logger      *slog.Logger
}

// NewUnfollowUseCase creates a new UnfollowUseCase.
func NewUnfollowUseCase(profileRepo Repository, logger *slog.Logger) *UnfollowUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnfollowUseCase{profileRepo: profileRepo, logger: logger}
}

// Execute unfollows the target account.
//
// Unlike Follow there is no separate existence read: the repository resolves
// both "does this username exist" and "was an edge removed" in one call, and
// its result is returned unchanged. Unfollowing a non-followed or nonexistent
// relation is not an error.
func (uc *UnfollowUseCase) Execute(ctx context.Context, cmd UnfollowCommand) (Result, error) {
	userID, err := cmd.EnsureAuthenticated()
	if err != nil {
		return Result{}, err
	}

	target, err := uc.profileRepo.Unfollow(ctx, cmd.Username, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to unfollow: %w", err)
	}

	uc.logger.InfoContext(ctx, "profile is unfollowed",
		slog.String("username", cmd.Username),
		slog.String("user_id", userID.String()),
	)

	return Result{Profile: target}, nil
}
