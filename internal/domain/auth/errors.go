package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenExpired       = errors.New("token expired")
	ErrAdminNotFound      = errors.New("administrator not found")
	ErrAdminInactive      = errors.New("administrator account is disabled")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)
