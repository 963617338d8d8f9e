package employee

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/h496242/hrm-backend-go/internal/domain/employee"
)

type EmployeeService struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		EmployeeRepository: employeeRepository,
	}
}

func (s *EmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joinDate := time.Now().UTC()
	emp := employee.Employee{
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Gender:       req.Gender,
		DOB:          req.DOB,
		Address:      req.Address,
		Role:         employee.Role(req.Role),
		DepartmentID: req.DepartmentID,
		JoinDate:     &joinDate,
		IsActive:     true,
	}

	// The repository mints the EMP### code under the same lock as the
	// insert.
	stored, err := s.EmployeeRepository.CreateWithCode(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return ToResponse(stored), nil
}

func (s *EmployeeService) Get(ctx context.Context, companyID string, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return ToResponse(emp), nil
}

func (s *EmployeeService) List(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, ToResponse(emp))
	}
	return out, nil
}

func (s *EmployeeService) Update(ctx context.Context, companyID string, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.DOB != nil {
		emp.DOB = req.DOB
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.Get(ctx, companyID, id)
}

func (s *EmployeeService) Deactivate(ctx context.Context, companyID string, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to get employee by ID: %w", err)
	}

	emp.IsActive = false
	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) ListDepartments(ctx context.Context, companyID string) ([]employee.DepartmentResponse, error) {
	departments, err := s.EmployeeRepository.ListDepartments(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]employee.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		out = append(out, employee.DepartmentResponse{
			ID:          dept.ID,
			CompanyID:   dept.CompanyID,
			Name:        dept.Name,
			Description: dept.Description,
			IsActive:    dept.IsActive,
			CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// ToResponse maps a directory entry to its API shape, never exposing the
// password hash.
func ToResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		CompanyID:    emp.CompanyID,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Gender:       emp.Gender,
		DOB:          emp.DOB,
		Address:      emp.Address,
		Role:         string(emp.Role),
		DepartmentID: emp.DepartmentID,
		IsActive:     emp.IsActive,
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.JoinDate != nil {
		joinDate := emp.JoinDate.Format("2006-01-02")
		resp.JoinDate = &joinDate
	}
	return resp
}
