package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/auth"
)

// requestIdentity pulls the caller's user and company ids out of the
// verified token claims.
func requestIdentity(r *http.Request) (userID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrInvalidToken
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", auth.ErrInvalidToken
	}

	return userID, companyID, nil
}
