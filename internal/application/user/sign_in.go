package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stkrizh/conduit/internal/application/appcore"
)

// SignInUseCase authenticates a user by email and password and mints an
// authentication token on success.
type SignInUseCase struct {
	userRepo    Repository
	tokenIssuer TokenIssuer
	logger      *slog.Logger
}

// NewSignInUseCase creates a new SignInUseCase.
func NewSignInUseCase(userRepo Repository, tokenIssuer TokenIssuer, logger *slog.Logger) *SignInUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignInUseCase{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Execute performs the sign-in.
//
// It returns ErrInvalidCredentials when no account matches, identical for an
// unknown email and a wrong password.
func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (AuthResult, error) {
	if err := uc.validate(cmd); err != nil {
		return AuthResult{}, fmt.Errorf("validation failed: %w", err)
	}

	usr, err := uc.userRepo.FindByCredentials(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to find user by credentials: %w", err)
	}
	if usr == nil {
		uc.logger.InfoContext(ctx, "sign in rejected, credentials do not match any account")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := uc.tokenIssuer.Issue(ctx, usr.ID())
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.InfoContext(ctx, "user signed in",
		slog.String("user_id", usr.ID().String()),
	)

	return AuthResult{User: usr, Token: token}, nil
}

func (uc *SignInUseCase) validate(cmd SignInCommand) error {
	if err := appcore.ValidateEmail("email", cmd.Email); err != nil {
		return err
	}
	if err := appcore.ValidatePassword("password", cmd.Password); err != nil {
		return err
	}
	return nil
}
