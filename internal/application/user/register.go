package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stkrizh/conduit/internal/application/appcore"
	"github.com/stkrizh/conduit/internal/domain/user"
)

// RegisterUseCase handles registration of a new account.
type RegisterUseCase struct {
	userRepo    Repository
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
	logger      *slog.Logger
}

// NewRegisterUseCase creates a new RegisterUseCase.
func NewRegisterUseCase(
	userRepo Repository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	logger *slog.Logger,
) *RegisterUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Execute registers the account and signs the new user in.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (AuthResult, error) {
	if err := uc.validate(cmd); err != nil {
		return AuthResult{}, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if existing != nil {
		return AuthResult{}, ErrUsernameAlreadyTaken
	}

	existing, err = uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return AuthResult{}, ErrEmailAlreadyTaken
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	usr, err := user.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	if saveErr := uc.userRepo.Save(ctx, usr); saveErr != nil {
		return AuthResult{}, fmt.Errorf("failed to save user: %w", saveErr)
	}

	token, err := uc.tokenIssuer.Issue(ctx, usr.ID())
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", usr.ID().String()),
		slog.String("username", usr.Username()),
	)

	return AuthResult{User: usr, Token: token}, nil
}

func (uc *RegisterUseCase) validate(cmd RegisterCommand) error {
	if err := appcore.ValidateUsername("username", cmd.Username); err != nil {
		return err
	}
	if err := appcore.ValidateEmail("email", cmd.Email); err != nil {
		return err
	}
	if err := appcore.ValidatePassword("password", cmd.Password); err != nil {
		return err
	}
	return nil
}
