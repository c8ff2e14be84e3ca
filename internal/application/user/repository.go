package user

import (
	"context"

	"github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// Repository defines the persistence operations available to user use cases.
// Interface declared on the consumer side (application layer).
//
// Absence is modeled as (nil, nil), never as an error: a lookup that matches
// no account is a normal outcome. Errors signal infrastructure failure only
// and are propagated unchanged by use cases.
type Repository interface {
	// FindByCredentials finds the account matching the email and password, or
	// (nil, nil) when none matches. Credential comparison happens inside the
	// adapter and must not leak which of the two fields was wrong.
	FindByCredentials(ctx context.Context, email, password string) (*user.User, error)

	// FindByID finds an account by id, or (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)

	// FindByEmail finds an account by email, or (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByUsername finds an account by username, or (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// Save persists a new or updated account.
	Save(ctx context.Context, u *user.User) error
}

// TokenIssuer mints authentication tokens bound to a user identity.
// The token format is opaque to the application layer.
type TokenIssuer interface {
	// Issue mints a token for the given user id.
	Issue(ctx context.Context, userID uuid.UUID) (user.AuthToken, error)
}

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	// Hash computes a one-way hash of the password.
	Hash(password string) (string, error)
}
