package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID to keep records scoped to one company.
type AttendanceRepository interface {
	// Upsert replaces any record for the same (employee, date) slot and
	// inserts the given one. The replacement is atomic: concurrent marks
	// for one slot can never leave two records behind.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// ListByDate retrieves all records for a calendar day
	ListByDate(ctx context.Context, companyID string, date time.Time) ([]Attendance, error)

	// ListByEmployee retrieves an employee's records, optionally bounded
	// by an inclusive date range; nil bounds are open.
	ListByEmployee(ctx context.Context, companyID string, employeeID string, from, to *time.Time) ([]Attendance, error)
}
