package user

import "errors"

var (
	// ErrInvalidCredentials is returned by sign-in when no account matches the
	// email and password. Unknown email and wrong password produce this same
	// error so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a bound actor resolves to no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyTaken is returned on registration with an existing username.
	ErrUsernameAlreadyTaken = errors.New("username already taken")

	// ErrEmailAlreadyTaken is returned on registration with an existing email.
	ErrEmailAlreadyTaken = errors.New("email already taken")
)
