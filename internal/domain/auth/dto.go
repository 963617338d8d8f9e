package auth

import (
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expiresAt"`
	User      employee.EmployeeResponse `json:"user"`
}
