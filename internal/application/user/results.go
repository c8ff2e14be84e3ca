package user

import (
	"github.com/stkrizh/conduit/internal/domain/user"
)

// AuthResult is the result of an operation that establishes identity
// (sign-in, registration): the account and a freshly minted token.
type AuthResult struct {
	User  *user.User
	Token user.AuthToken
}

// Result is the result of an operation returning a single account.
type Result struct {
	User *user.User
}
