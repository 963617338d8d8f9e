package attendance

import "context"

type AttendanceService interface {
	// Mark upserts the attendance record for (employee, date)
	Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)

	// GetByDate returns all records for a calendar day ("YYYY-MM-DD")
	GetByDate(ctx context.Context, companyID string, date string) ([]AttendanceResponse, error)

	// GetEmployeeAttendance returns an employee's records, optionally
	// bounded by an inclusive range; empty bounds are open.
	GetEmployeeAttendance(ctx context.Context, companyID string, employeeID string, from, to string) ([]AttendanceResponse, error)
}
