package auth

import "context"

type AuthService interface {
	// Login authenticates against the employee directory and issues an
	// access token.
	Login(ctx context.Context, companyID string, req LoginRequest) (LoginResponse, error)
}
