// Package user contains the user account entity.
package user

import (
	"time"

	"github.com/stkrizh/conduit/internal/domain/errs"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// AuthToken is an opaque signed credential proving identity.
// It is issued on successful sign-in and is never interpreted by use cases.
type AuthToken string

// String returns the raw token value.
func (t AuthToken) String() string {
	return string(t)
}

// User represents a registered account.
type User struct {
	id           uuid.UUID
	username     string
	email        string
	bio          string
	image        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new account. The password hash must already be computed
// by the caller; this entity never sees plaintext credentials.
func NewUser(username, email, passwordHash string) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidInput
	}
	if email == "" {
		return nil, errs.ErrInvalidInput
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidInput
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.NewUUID(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct restores a user from storage.
func Reconstruct(
	id uuid.UUID,
	username, email, bio, image, passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		bio:          bio,
		image:        image,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the account identifier.
func (u *User) ID() uuid.UUID {
	return u.id
}

// Username returns the username.
func (u *User) Username() string {
	return u.username
}

// Email returns the email address.
func (u *User) Email() string {
	return u.email
}

// Bio returns the profile bio.
func (u *User) Bio() string {
	return u.bio
}

// Image returns the profile image URL.
func (u *User) Image() string {
	return u.image
}

// PasswordHash returns the hashed credential. Only storage adapters and the
// credential-matching lookup may use it.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the time of the last update.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
