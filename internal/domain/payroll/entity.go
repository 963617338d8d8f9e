package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStatus enum, forward-only: pending -> approved -> paid
type SalaryStatus string

const (
	SalaryStatusPending  SalaryStatus = "pending"
	SalaryStatusApproved SalaryStatus = "approved"
	SalaryStatusPaid     SalaryStatus = "paid"
)

// SalaryComponent - a named allowance, bonus or deduction amount
type SalaryComponent struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SalaryRecord - one payroll result per employee per (month, year) period.
// All money amounts are fixed-point decimals so repeated regeneration never
// accumulates rounding drift.
type SalaryRecord struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Month           int // 1-12
	Year            int
	BaseSalary      decimal.Decimal
	Allowances      []SalaryComponent
	Bonuses         []SalaryComponent
	Deductions      []SalaryComponent
	TotalAllowances decimal.Decimal
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossSalary     decimal.Decimal // base + allowances + bonuses
	NetSalary       decimal.Decimal // gross - deductions
	Status          SalaryStatus
	ApprovedBy      *string
	PaidAt          *time.Time
	GeneratedAt     time.Time
	CreatedAt       time.Time
}

// SumComponents totals a component list; an empty list sums to zero.
func SumComponents(components []SalaryComponent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Amount)
	}
	return total
}
