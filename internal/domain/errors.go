package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated covers every token failure (missing, malformed,
	// expired, bad signature, unknown subject) with a single message.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrForbidden means the caller is authenticated but does not own the
	// target resource.
	ErrForbidden = errors.New("not enough permission")

	ErrUserNotFound = errors.New("user not found")
	ErrTodoNotFound = errors.New("todo not found")

	ErrUsernameTaken = errors.New("user with this username already exists")
	ErrEmailTaken    = errors.New("user with this email already exists")
)
