package attendance

import (
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid calendar date in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, leave, holiday, late",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkInTime",
				Message: "checkInTime must be a valid HH:MM time",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOutTime",
				Message: "checkOutTime must be a valid HH:MM time",
			})
		}
	}

	// Same-day shifts only: check-out must not precede check-in.
	if r.CheckInTime != nil && r.CheckOutTime != nil {
		in, okIn := validator.IsValidClockTime(*r.CheckInTime)
		out, okOut := validator.IsValidClockTime(*r.CheckOutTime)
		if okIn && okOut && out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOutTime",
				Message: "checkOutTime must not be earlier than checkInTime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	CompanyID    string  `json:"companyId"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
	TotalHours   float64 `json:"totalHours"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}
