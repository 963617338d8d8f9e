package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountInactive        = errors.New("account is deactivated")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrReviewerAccessRequired = errors.New("owner, admin or hr access required")
)
