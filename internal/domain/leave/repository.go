package leave

import (
	"context"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)

	// Update replaces an existing leave request, but only while its stored
	// status still matches expected; ErrLeaveAlreadyProcessed otherwise.
	// The check and the write happen under one lock so concurrent
	// decisions cannot both pass the pending guard.
	Update(ctx context.Context, request LeaveRequest, expected Status) error

	// ListByCompany retrieves all requests, newest application first
	ListByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error)

	// ListByEmployee retrieves one employee's requests, newest application first
	ListByEmployee(ctx context.Context, companyID string, employeeID string) ([]LeaveRequest, error)
}
