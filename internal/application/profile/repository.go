package profile

import (
	"context"

	"github.com/stkrizh/conduit/internal/domain/profile"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// UpdateProfileInput describes a partial change to the relationship between
// the acting user and a profile. Nil fields are left untouched.
type UpdateProfileInput struct {
	IsFollowing *bool
}

// Repository defines the persistence operations available to profile use
// cases. Interface declared on the consumer side (application layer).
//
// Absence is modeled as (nil, nil), never as an error. Errors signal
// infrastructure failure only. Implementations must keep at most one
// materialized follow edge per (follower, followee) pair under concurrent
// calls, and each edge mutation must be atomic.
type Repository interface {
	// GetByUsername returns the profile of the account with the given
	// username as seen by viewedBy, or (nil, nil) when no account has that
	// username. IsFollowing reflects the current edge state at read time; a
	// zero viewedBy is an anonymous viewer and always sees IsFollowing=false.
	GetByUsername(ctx context.Context, username string, viewedBy uuid.UUID) (*profile.Profile, error)

	// Update applies a follow-relationship change from actor by toward the
	// profile and returns the refreshed viewer-relative profile. Repeating an
	// update that is already in effect is a no-op, never an error.
	Update(ctx context.Context, profileID uuid.UUID, input UpdateProfileInput, by uuid.UUID) (*profile.Profile, error)

	// Unfollow removes the edge (if any) from followingBy toward the account
	// with the given username and returns the resulting viewer-relative
	// profile, or (nil, nil) when no such account exists. Unfollowing a
	// relation that does not exist is not an error.
	Unfollow(ctx context.Context, username string, followingBy uuid.UUID) (*profile.Profile, error)
}
