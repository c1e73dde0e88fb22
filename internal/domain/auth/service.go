package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)

	Logout(ctx context.Context, token string) error

	// LoginWithGoogle matches a verified Google email to an administrator.
	LoginWithGoogle(ctx context.Context, email string, verified bool) (LoginResponse, error)
}
