package employee

import (
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Address      *string `json:"address,omitempty"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if !validator.IsInSlice(r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: owner, admin, hr, employee",
		})
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be a valid calendar date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Address      *string `json:"address,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: owner, admin, hr, employee",
		})
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be a valid calendar date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"companyId"`
	EmployeeCode string  `json:"employeeId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Address      *string `json:"address,omitempty"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"departmentId,omitempty"`
	JoinDate     *string `json:"joinDate,omitempty"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"companyId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
}
