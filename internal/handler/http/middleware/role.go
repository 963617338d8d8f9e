package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/auth"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

// RequireReviewer requires a role that may decide leave requests and
// approve or pay salaries.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrReviewerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrReviewerAccessRequired)
			return
		}

		if !employee.Role(roleStr).CanReview() {
			response.HandleError(w, auth.ErrReviewerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
