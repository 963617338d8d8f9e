package payroll

import "context"

// SalaryFilter narrows List to one payroll period; both fields are set
// together or not at all.
type SalaryFilter struct {
	Month *int
	Year  *int
}

// SalaryRepository defines data access methods for salary records.
type SalaryRepository interface {
	// Replace removes any record for the same (employee, month, year)
	// period and inserts the given one. The replacement is atomic.
	Replace(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// GetByID retrieves a salary record by ID
	GetByID(ctx context.Context, id string, companyID string) (SalaryRecord, error)

	// Update replaces an existing salary record in place, keyed by ID, but
	// only while its stored status still matches expected. A record that
	// is still pending reports ErrSalaryNotApproved; any other mismatch
	// reports ErrSalaryAlreadyProcessed. The check and the write happen
	// under one lock so concurrent transitions cannot both pass.
	Update(ctx context.Context, record SalaryRecord, expected SalaryStatus) error

	// List retrieves salary records, optionally filtered to one period,
	// newest generation first.
	List(ctx context.Context, companyID string, filter SalaryFilter) ([]SalaryRecord, error)
}
