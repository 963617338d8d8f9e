package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/auth"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose verified token is missing or is not
// an access token. It runs after jwtauth.Verifier, which parses the token
// into the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
