package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/h496242/hrm-backend-go/internal/domain/auth"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/pkg/jwt"
	employeeservice "github.com/h496242/hrm-backend-go/internal/service/employee"
)

type AuthService struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

func (s *AuthService) Login(ctx context.Context, companyID string, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.CompanyID, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      employeeservice.ToResponse(emp),
	}, nil
}
