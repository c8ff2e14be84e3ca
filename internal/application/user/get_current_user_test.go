package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stkrizh/conduit/internal/application/appcore"
	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

func TestGetCurrentUserUseCase_Execute_Success(t *testing.T) {
	// Arrange
	repo := newMockUserRepository()
	useCase := userapp.NewGetCurrentUserUseCase(repo)
	usr := seedUser(t, repo, "jake", "jake@example.com", "pw")

	query := userapp.GetCurrentUserQuery{}.WithUserID(usr.ID())

	// Act
	result, err := useCase.Execute(context.Background(), query)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.User == nil || result.User.ID() != usr.ID() {
		t.Error("expected the actor's account in the result")
	}
}

func TestGetCurrentUserUseCase_Execute_NotAuthenticated(t *testing.T) {
	// Arrange
	repo := newMockUserRepository()
	useCase := userapp.NewGetCurrentUserUseCase(repo)

	// Act - no actor bound
	_, err := useCase.Execute(context.Background(), userapp.GetCurrentUserQuery{})

	// Assert
	if !errors.Is(err, appcore.ErrUserNotAuthenticated) {
		t.Errorf("expected ErrUserNotAuthenticated, got: %v", err)
	}
}

func TestGetCurrentUserUseCase_Execute_DanglingActor(t *testing.T) {
	// Arrange
	repo := newMockUserRepository()
	useCase := userapp.NewGetCurrentUserUseCase(repo)

	query := userapp.GetCurrentUserQuery{}.WithUserID(uuid.NewUUID())

	// Act
	_, err := useCase.Execute(context.Background(), query)

	// Assert
	if !errors.Is(err, userapp.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
