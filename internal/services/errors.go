package services

import "errors"

var (
	// ErrDuplicateEmail signals a registration with an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials signals a failed login. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound signals a lookup of a user ID that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFoundOrUnauthorized signals that a list does not exist or is
	// not owned by the requesting user. The two cases are deliberately
	// conflated so callers cannot probe which list IDs exist.
	ErrNotFoundOrUnauthorized = errors.New("list not found or unauthorized")

	// ErrItemNotFound signals that an owned list has no item with the
	// given ID.
	ErrItemNotFound = errors.New("item not found")
)
