package payroll

import "errors"

// Payroll domain errors
var (
	ErrSalaryNotFound         = errors.New("salary record not found")
	ErrSalaryAlreadyProcessed = errors.New("salary record has already been approved or paid")
	ErrSalaryNotApproved      = errors.New("salary record must be approved before it can be paid")
)
