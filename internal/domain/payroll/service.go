package payroll

import "context"

type PayrollService interface {
	// Generate derives totals, gross and net from the inputs and stores a
	// pending record, replacing any prior record for the same period.
	Generate(ctx context.Context, companyID string, req GenerateSalaryRequest) (SalaryResponse, error)

	// Approve transitions a pending record to approved
	Approve(ctx context.Context, companyID string, salaryID string, approverID string) (SalaryResponse, error)

	// MarkPaid transitions an approved record to paid and stamps the
	// payment time. A record that was never approved cannot be paid.
	MarkPaid(ctx context.Context, companyID string, salaryID string) (SalaryResponse, error)

	// List returns salary records, optionally filtered to one period
	List(ctx context.Context, companyID string, filter SalaryFilter) ([]SalaryResponse, error)
}
