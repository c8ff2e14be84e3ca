package appcore

import (
	"errors"

	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// ErrUserNotAuthenticated is returned by EnsureAuthenticated when a command
// that requires a signed-in actor has no actor bound.
var ErrUserNotAuthenticated = errors.New("user is not authenticated")

// AuthInput carries the optional actor identity for commands that require a
// signed-in actor. It is embedded by value into such commands; the slot starts
// unbound and is filled exactly once, by the transport adapter, before the use
// case executes. Use cases never bind it themselves.
type AuthInput struct {
	userID uuid.UUID
}

// EnsureAuthenticated returns the bound actor id, or ErrUserNotAuthenticated
// if no actor has been bound. Every authenticated use case calls this before
// touching repositories; it is the single authorization checkpoint.
func (a AuthInput) EnsureAuthenticated() (uuid.UUID, error) {
	if a.userID.IsZero() {
		return "", ErrUserNotAuthenticated
	}
	return a.userID, nil
}

// WithUserID returns a copy of the input with the actor bound. The receiver is
/// left unmodified: inputs may be constructed by a request binder that has no
// identity context yet.
func (a AuthInput) WithUserID(id uuid.UUID) AuthInput {
	a.userID = id
	return a
}

// AuthenticatedCommand is implemented by every command embedding AuthInput.
// Transport adapters use it to enforce the actor requirement generically.
type AuthenticatedCommand interface {
	EnsureAuthenticated() (uuid.UUID, error)
}
