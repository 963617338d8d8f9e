package http

import (
	"encoding/json"
	"net/http"

	"github.com/h496242/hrm-backend-go/internal/domain/auth"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	companyID   string
}

func NewAuthHandler(authService auth.AuthService, companyID string) *AuthHandlerImpl {
	return &AuthHandlerImpl{
		authService: authService,
		companyID:   companyID,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), h.companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}
