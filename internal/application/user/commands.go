package user

import (
	"github.com/stkrizh/conduit/internal/application/appcore"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// SignInCommand - sign in with email and password. Carries no actor identity;
// proving identity is the point of the operation.
type SignInCommand struct {
	Email    string
	Password string
}

// CommandName returns the command name.
func (c SignInCommand) CommandName() string { return "SignIn" }

// RegisterCommand - register a new account.
type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

// CommandName returns the command name.
func (c RegisterCommand) CommandName() string { return "Register" }

// GetCurrentUserQuery - load the account of the signed-in actor.
type GetCurrentUserQuery struct {
	appcore.AuthInput
}

// QueryName returns the query name.
func (q GetCurrentUserQuery) QueryName() string { return "GetCurrentUser" }

// WithUserID returns a copy of the query with the actor bound.
func (q GetCurrentUserQuery) WithUserID(id uuid.UUID) GetCurrentUserQuery {
	q.AuthInput = q.AuthInput.WithUserID(id)
	return q
}
