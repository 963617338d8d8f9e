package leave

import "context"

type LeaveService interface {
	// Apply creates a pending leave request; total days are derived
	// from the inclusive date range.
	Apply(ctx context.Context, companyID string, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// Review decides a pending request. A request that has already been
	// decided cannot be reviewed again.
	Review(ctx context.Context, companyID string, requestID string, reviewerID string, req ReviewLeaveRequest) (LeaveRequestResponse, error)

	// ListForCompany returns all requests, newest application first
	ListForCompany(ctx context.Context, companyID string) ([]LeaveRequestResponse, error)

	// ListForEmployee returns one employee's requests, newest application first
	ListForEmployee(ctx context.Context, companyID string, employeeID string) ([]LeaveRequestResponse, error)
}
