package attendance

import (
	"time"
)

// Status enum
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
	StatusLate    Status = "late"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLeave),
		string(StatusHoliday),
		string(StatusLate),
	}
}

// Attendance - one mark per employee per calendar day
type Attendance struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	Date         time.Time // calendar day, midnight UTC
	Status       Status
	CheckInTime  *string // "HH:MM" wall clock
	CheckOutTime *string
	TotalHours   float64
	Notes        *string
	CreatedAt    time.Time
}
