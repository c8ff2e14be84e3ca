package profile

import (
	"github.com/stkrizh/conduit/internal/application/appcore"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// FollowCommand - follow the account with the given username.
type FollowCommand struct {
	appcore.AuthInput
	Username string
}

// CommandName returns the command name.
func (c FollowCommand) CommandName() string { return "Follow" }

// WithUserID returns a copy of the command with the actor bound.
func (c FollowCommand) WithUserID(id uuid.UUID) FollowCommand {
	c.AuthInput = c.AuthInput.WithUserID(id)
	return c
}

// UnfollowCommand - unfollow the account with the given username.
type UnfollowCommand struct {
	appcore.AuthInput
	Username string
}

// CommandName returns the command name.
func (c UnfollowCommand) CommandName() string { return "Unfollow" }

// WithUserID returns a copy of the command with the actor bound.
func (c UnfollowCommand) WithUserID(id uuid.UUID) UnfollowCommand {
	c.AuthInput = c.AuthInput.WithUserID(id)
	return c
}

// GetProfileQuery - read a profile as seen by an optional viewer.
// A zero Viewer is an anonymous read.
type GetProfileQuery struct {
	Username string
	Viewer   uuid.UUID
}

// QueryName returns the query name.
func (q GetProfileQuery) QueryName() string { return "GetProfile" }
