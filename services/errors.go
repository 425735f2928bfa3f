package services

import "errors"

// Error taxonomy shared by every service. Controllers map these onto HTTP
// status codes; anything else is a 500.
var (
	// ErrNotFound covers absent documents, malformed ids and empty result
	// sets where one item is required.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a registration email is already taken.
	ErrConflict = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email or password mismatch at login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, forged or expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidScore is returned when a rating falls outside [1,5].
	ErrInvalidScore = errors.New("score must be 1-5")
)
