package leave

import (
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employeeId"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Reason     string `json:"reason"`
	Type       string `json:"type"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be a valid calendar date in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must be a valid calendar date in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must not be earlier than fromDate",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if !validator.IsInSlice(r.Type, ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: casual, sick, annual, maternity, paternity, emergency",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequest struct {
	Status   string  `json:"status"`
	Comments *string `json:"comments,omitempty"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	CompanyID  string  `json:"companyId"`
	FromDate   string  `json:"fromDate"`
	ToDate     string  `json:"toDate"`
	TotalDays  int     `json:"totalDays"`
	Reason     string  `json:"reason"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	ReviewedBy *string `json:"reviewedBy,omitempty"`
	ReviewedAt *string `json:"reviewedAt,omitempty"`
	Comments   *string `json:"comments,omitempty"`
	AppliedAt  string  `json:"appliedAt"`
}
