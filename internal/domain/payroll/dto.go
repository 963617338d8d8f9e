package payroll

import (
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComponentInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type GenerateSalaryRequest struct {
	EmployeeID string           `json:"employeeId"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	BaseSalary decimal.Decimal  `json:"baseSalary"`
	Allowances []ComponentInput `json:"allowances"`
	Bonuses    []ComponentInput `json:"bonuses"`
	Deductions []ComponentInput `json:"deductions"`
}

func (r *GenerateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "baseSalary",
			Message: "baseSalary must not be negative",
		})
	}

	errs = append(errs, validateComponents("allowances", r.Allowances)...)
	errs = append(errs, validateComponents("bonuses", r.Bonuses)...)
	errs = append(errs, validateComponents("deductions", r.Deductions)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateComponents(field string, components []ComponentInput) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, c := range components {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "every " + field + " entry needs a name",
			})
		}
		if c.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "every " + field + " amount must not be negative",
			})
		}
	}
	return errs
}

type SalaryResponse struct {
	ID              string            `json:"id"`
	EmployeeID      string            `json:"employeeId"`
	CompanyID       string            `json:"companyId"`
	Month           int               `json:"month"`
	Year            int               `json:"year"`
	BaseSalary      decimal.Decimal   `json:"baseSalary"`
	Allowances      []SalaryComponent `json:"allowances"`
	Bonuses         []SalaryComponent `json:"bonuses"`
	Deductions      []SalaryComponent `json:"deductions"`
	TotalAllowances decimal.Decimal   `json:"totalAllowances"`
	TotalBonuses    decimal.Decimal   `json:"totalBonuses"`
	TotalDeductions decimal.Decimal   `json:"totalDeductions"`
	GrossSalary     decimal.Decimal   `json:"grossSalary"`
	NetSalary       decimal.Decimal   `json:"netSalary"`
	Status          string            `json:"status"`
	ApprovedBy      *string           `json:"approvedBy,omitempty"`
	PaidAt          *string           `json:"paidAt,omitempty"`
	GeneratedAt     string            `json:"generatedAt"`
}
