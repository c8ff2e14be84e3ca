package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stkrizh/conduit/internal/application/appcore"
	profileapp "github.com/stkrizh/conduit/internal/application/profile"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

func TestUnfollowUseCase_Execute_Success(t *testing.T) {
	// Arrange - actor already follows bob
	repo := newMockProfileRepository()
	followUC := profileapp.NewFollowUseCase(repo, nil)
	unfollowUC := profileapp.NewUnfollowUseCase(repo, nil)
	actor := uuid.NewUUID()
	bobID := repo.addAccount("bob")

	if _, err := followUC.Execute(context.Background(), profileapp.FollowCommand{Username: "bob"}.WithUserID(actor)); err != nil {
		t.Fatalf("failed to arrange follow: %v", err)
	}

	// Act
	result, err := unfollowUC.Execute(context.Background(), profileapp.UnfollowCommand{Username: "bob"}.WithUserID(actor))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Profile == nil {
		t.Fatal("expected a profile in the result")
	}
	if result.Profile.IsFollowing {
		t.Error("expected IsFollowing=false after unfollow")
	}
	if repo.hasEdge(actor, bobID) {
		t.Error("expected the follow edge to be removed")
	}
}

func TestUnfollowUseCase_Execute_NotAuthenticated(t *testing.T) {
	// Arrange
	repo := newMockProfileRepository()
	useCase := profileapp.NewUnfollowUseCase(repo, nil)
	repo.addAccount("bob")

	// Act - no actor bound
	_, err := useCase.Execute(context.Background(), profileapp.UnfollowCommand{Username: "bob"})

	// Assert
	if !errors.Is(err, appcore.ErrUserNotAuthenticated) {
		t.Errorf("expected ErrUserNotAuthenticated, got: %v", err)
	}
}

func TestUnfollowUseCase_Execute_ProfileNotFound(t *testing.T) {
	// Arrange
	repo := newMockProfileRepository()
	useCase := profileapp.NewUnfollowUseCase(repo, nil)

	cmd := profileapp.UnfollowCommand{Username: "ghost"}.WithUserID(uuid.NewUUID())

	// Act
	result, err := useCase.Execute(context.Background(), cmd)

	// Assert - nonexistent username is a nil profile, not an error
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Profile != nil {
		t.Error("expected nil profile for nonexistent username")
	}
}

func TestUnfollowUseCase_Execute_NotFollowed(t *testing.T) {
	// Arrange - bob exists but the actor never followed him
	repo := newMockProfileRepository()
	useCase := profileapp.NewUnfollowUseCase(repo, nil)
	repo.addAccount("bob")

	cmd := profileapp.UnfollowCommand{Username: "bob"}.WithUserID(uuid.NewUUID())

	// Act
	result, err := useCase.Execute(context.Background(), cmd)

	// Assert - idempotent: no error, profile reported as not followed
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Profile == nil {
		t.Fatal("expected a profile in the result")
	}
	if result.Profile.IsFollowing {
		t.Error("expected IsFollowing=false")
	}
}

func TestUnfollowUseCase_Execute_RepositoryFailureBubbles(t *testing.T) {
	// Arrange
	repo := newMockProfileRepository()
	infraErr := errors.New("write concern timeout")
	repo.unfollowError = infraErr
	useCase := profileapp.NewUnfollowUseCase(repo, nil)

	cmd := profileapp.UnfollowCommand{Username: "bob"}.WithUserID(uuid.NewUUID())

	// Act
	_, err := useCase.Execute(context.Background(), cmd)

	// Assert
	if !errors.Is(err, infraErr) {
		t.Errorf("expected infrastructure error to propagate, got: %v", err)
	}
}

func TestFollowUnfollowFollow_Roundtrip(t *testing.T) {
	// Follow -> Unfollow -> Follow leaves the pair followed with no residue.
	repo := newMockProfileRepository()
	followUC := profileapp.NewFollowUseCase(repo, nil)
	unfollowUC := profileapp.NewUnfollowUseCase(repo, nil)
	actor := uuid.NewUUID()
	bobID := repo.addAccount("bob")
	ctx := context.Background()

	if _, err := followUC.Execute(ctx, profileapp.FollowCommand{Username: "bob"}.WithUserID(actor)); err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	mid, err := unfollowUC.Execute(ctx, profileapp.UnfollowCommand{Username: "bob"}.WithUserID(actor))
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if mid.Profile.IsFollowing {
		t.Error("expected IsFollowing=false after unfollow")
	}

	final, err := followUC.Execute(ctx, profileapp.FollowCommand{Username: "bob"}.WithUserID(actor))
	if err != nil {
		t.Fatalf("second follow failed: %v", err)
	}
	if !final.Profile.IsFollowing {
		t.Error("expected IsFollowing=true after the final follow")
	}
	if !repo.hasEdge(actor, bobID) {
		t.Error("expected exactly the one edge to be present")
	}
}
