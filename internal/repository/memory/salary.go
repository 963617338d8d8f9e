package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
)

type SalaryRepository struct {
	mu      sync.Mutex
	records map[string]payroll.SalaryRecord
}

func NewSalaryRepository() *SalaryRepository {
	return &SalaryRepository{records: make(map[string]payroll.SalaryRecord)}
}

func (r *SalaryRepository) Replace(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Exactly one record per (employee, month, year): discard the prior
	// one, approvals and payments included.
	for id, existing := range r.records {
		if existing.CompanyID == record.CompanyID &&
			existing.EmployeeID == record.EmployeeID &&
			existing.Month == record.Month &&
			existing.Year == record.Year {
			delete(r.records, id)
		}
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.records[record.ID] = cloneSalaryRecord(record)
	return cloneSalaryRecord(record), nil
}

func (r *SalaryRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.SalaryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok || record.CompanyID != companyID {
		return payroll.SalaryRecord{}, payroll.ErrSalaryNotFound
	}
	return cloneSalaryRecord(record), nil
}

func (r *SalaryRepository) Update(ctx context.Context, record payroll.SalaryRecord, expected payroll.SalaryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok || existing.CompanyID != record.CompanyID {
		return payroll.ErrSalaryNotFound
	}
	if existing.Status != expected {
		if existing.Status == payroll.SalaryStatusPending {
			return payroll.ErrSalaryNotApproved
		}
		return payroll.ErrSalaryAlreadyProcessed
	}
	r.records[record.ID] = cloneSalaryRecord(record)
	return nil
}

func (r *SalaryRepository) List(ctx context.Context, companyID string, filter payroll.SalaryFilter) ([]payroll.SalaryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []payroll.SalaryRecord
	for _, record := range r.records {
		if record.CompanyID != companyID {
			continue
		}
		if filter.Month != nil && record.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && record.Year != *filter.Year {
			continue
		}
		out = append(out, cloneSalaryRecord(record))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].GeneratedAt.Equal(out[j].GeneratedAt) {
			return out[i].GeneratedAt.After(out[j].GeneratedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneSalaryRecord(s payroll.SalaryRecord) payroll.SalaryRecord {
	out := s
	out.Allowances = cloneComponents(s.Allowances)
	out.Bonuses = cloneComponents(s.Bonuses)
	out.Deductions = cloneComponents(s.Deductions)
	out.ApprovedBy = cloneStringPtr(s.ApprovedBy)
	out.PaidAt = cloneTimePtr(s.PaidAt)
	return out
}

func cloneComponents(components []payroll.SalaryComponent) []payroll.SalaryComponent {
	if components == nil {
		return nil
	}
	out := make([]payroll.SalaryComponent, len(components))
	copy(out, components)
	return out
}
