package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, its signature does
	// not verify, or a required claim is absent.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or wrong password. The two cases are deliberately collapsed so the
	// response does not leak which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
