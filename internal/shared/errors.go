package shared

import "errors"

var (
	// ErrNotFound indicates a record absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrEmailExists indicates a registration against an already-taken email.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials indicates a password mismatch on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWrongAnswer indicates a failed security-answer check.
	ErrWrongAnswer = errors.New("incorrect security answer")
	// ErrTokenInvalid indicates a malformed or tampered token.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired indicates a token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrValidation indicates malformed input caught before any store access.
	ErrValidation = errors.New("validation failed")
)
