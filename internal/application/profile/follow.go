package profile

import (
	"context"
	"fmt"
	"log/slog"
)

// FollowUseCase makes the acting user follow another account.
type FollowUseCase struct {
	profileRepo Repository
	logger      *slog.Logger
}

// NewFollowUseCase creates a new FollowUseCase.
func NewFollowUseCase(profileRepo Repository, logger *slog.Logger) *FollowUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FollowUseCase{profileRepo: profileRepo, logger: logger}
}

// Execute follows the target account.
//
// It returns appcore.ErrUserNotAuthenticated when no actor is bound. A target
// username that resolves to no account yields Result{Profile: nil}, not an
// error. Following an already-followed account is idempotent. Self-follow is
// not rejected here; the edge store treats it like any other edge.
func (uc *FollowUseCase) Execute(ctx context.Context, cmd FollowCommand) (Result, error) {
	userID, err := cmd.EnsureAuthenticated()
	if err != nil {
		return Result{}, err
	}

	target, err := uc.profileRepo.GetByUsername(ctx, cmd.Username, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get profile by username: %w", err)
	}
	if target == nil {
		uc.logger.InfoContext(ctx, "could not follow profile, profile not found",
			slog.String("username", cmd.Username),
			slog.String("user_id", userID.String()),
		)
		return Result{}, nil
	}

	isFollowing := true
	followed, err := uc.profileRepo.Update(ctx, target.ID, UpdateProfileInput{IsFollowing: &isFollowing}, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to update follow state: %w", err)
	}

	uc.logger.InfoContext(ctx, "profile is followed",
		slog.String("username", cmd.Username),
		slog.String("user_id", userID.String()),
	)

	return Result{Profile: followed}, nil
}
