package response

import (
	"errors"
	"net/http"

	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
	"github.com/h496242/hrm-backend-go/internal/domain/auth"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/domain/leave"
	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrReviewerAccessRequired):
		Forbidden(w, "Owner, admin or hr access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrSalaryAlreadyProcessed):
		Conflict(w, "Salary record already processed")
	case errors.Is(err, payroll.ErrSalaryNotApproved):
		Conflict(w, "Salary record must be approved before payment")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
