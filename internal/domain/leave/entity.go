package leave

import (
	"time"
)

// Type enum
type Type string

const (
	TypeCasual    Type = "casual"
	TypeSick      Type = "sick"
	TypeAnnual    Type = "annual"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeEmergency Type = "emergency"
)

func ValidTypes() []string {
	return []string{
		string(TypeCasual),
		string(TypeSick),
		string(TypeAnnual),
		string(TypeMaternity),
		string(TypePaternity),
		string(TypeEmergency),
	}
}

// Status enum, pending is the only non-terminal state
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest - an employee's request for a date range, inclusive on both ends
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string
	FromDate   time.Time
	ToDate     time.Time
	TotalDays  int // always derived from the range, never client-supplied
	Reason     string
	Type       Type
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	Comments   *string
	AppliedAt  time.Time
	CreatedAt  time.Time
}

// InclusiveDayCount counts the calendar days spanned by [from, to],
// counting both endpoints: a single-day leave is 1 day.
func InclusiveDayCount(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}
