package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// Create inserts a new employee; the given EmployeeCode is kept as-is
	Create(ctx context.Context, emp Employee) (Employee, error)

	// CreateWithCode inserts a new employee and assigns the next EMP###
	// code under the same lock as the insert, so concurrent hires never
	// mint duplicate or skipped codes. Entries without a code, such as
	// the company owner, do not advance the sequence.
	CreateWithCode(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByEmail retrieves an employee by email within a company
	GetByEmail(ctx context.Context, email string, companyID string) (Employee, error)

	// List retrieves all employees of a company, oldest first
	List(ctx context.Context, companyID string) ([]Employee, error)

	// Update replaces an existing employee, keyed by ID
	Update(ctx context.Context, emp Employee) error

	// ListDepartments retrieves the company's departments
	ListDepartments(ctx context.Context, companyID string) ([]Department, error)
}
