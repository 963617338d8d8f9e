package employee

import (
	"time"
)

// Role enum
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

func ValidRoles() []string {
	return []string{
		string(RoleOwner),
		string(RoleAdmin),
		string(RoleHR),
		string(RoleEmployee),
	}
}

// CanReview reports whether the role may decide leave requests and
// approve or pay salaries.
func (r Role) CanReview() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleHR
}

// Employee - a directory entry; doubles as the login identity for the
// demo company.
type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string // "EMP001", assigned on creation
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Gender       *string
	DOB          *string
	Address      *string
	Role         Role
	DepartmentID *string
	JoinDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Department - read-only grouping for the directory
type Department struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}
