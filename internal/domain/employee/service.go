package employee

import "context"

type EmployeeService interface {
	// Create adds a directory entry and assigns the next employee code
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee
	Get(ctx context.Context, companyID string, id string) (EmployeeResponse, error)

	// List retrieves the whole directory
	List(ctx context.Context, companyID string) ([]EmployeeResponse, error)

	// Update applies a partial update
	Update(ctx context.Context, companyID string, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate marks an employee inactive; directory entries are never
	// hard-deleted.
	Deactivate(ctx context.Context, companyID string, id string) error

	// ListDepartments retrieves the company's departments
	ListDepartments(ctx context.Context, companyID string) ([]DepartmentResponse, error)
}
