package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
)

type PayrollService struct {
	payroll.SalaryRepository
}

func NewPayrollService(salaryRepository payroll.SalaryRepository) *PayrollService {
	return &PayrollService{
		SalaryRepository: salaryRepository,
	}
}

func (s *PayrollService) Generate(ctx context.Context, companyID string, req payroll.GenerateSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	allowances := toComponents(req.Allowances)
	bonuses := toComponents(req.Bonuses)
	deductions := toComponents(req.Deductions)

	totalAllowances := payroll.SumComponents(allowances)
	totalBonuses := payroll.SumComponents(bonuses)
	totalDeductions := payroll.SumComponents(deductions)
	gross := req.BaseSalary.Add(totalAllowances).Add(totalBonuses)

	record := payroll.SalaryRecord{
		EmployeeID:      req.EmployeeID,
		CompanyID:       companyID,
		Month:           req.Month,
		Year:            req.Year,
		BaseSalary:      req.BaseSalary,
		Allowances:      allowances,
		Bonuses:         bonuses,
		Deductions:      deductions,
		TotalAllowances: totalAllowances,
		TotalBonuses:    totalBonuses,
		TotalDeductions: totalDeductions,
		GrossSalary:     gross,
		NetSalary:       gross.Sub(totalDeductions),
		Status:          payroll.SalaryStatusPending,
		GeneratedAt:     time.Now().UTC(),
	}

	stored, err := s.SalaryRepository.Replace(ctx, record)
	if err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to store salary record: %w", err)
	}

	return toResponse(stored), nil
}

func (s *PayrollService) Approve(ctx context.Context, companyID string, salaryID string, approverID string) (payroll.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, salaryID, companyID)
	if err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to get salary record by ID: %w", err)
	}

	if record.Status != payroll.SalaryStatusPending {
		return payroll.SalaryResponse{}, payroll.ErrSalaryAlreadyProcessed
	}

	record.Status = payroll.SalaryStatusApproved
	record.ApprovedBy = &approverID

	// The repository re-checks the pending status under its lock: an
	// approval that lost the race surfaces as ErrSalaryAlreadyProcessed.
	if err := s.SalaryRepository.Update(ctx, record, payroll.SalaryStatusPending); err != nil {
		if errors.Is(err, payroll.ErrSalaryAlreadyProcessed) {
			return payroll.SalaryResponse{}, err
		}
		return payroll.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	return toResponse(record), nil
}

func (s *PayrollService) MarkPaid(ctx context.Context, companyID string, salaryID string) (payroll.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, salaryID, companyID)
	if err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to get salary record by ID: %w", err)
	}

	switch record.Status {
	case payroll.SalaryStatusPaid:
		return payroll.SalaryResponse{}, payroll.ErrSalaryAlreadyProcessed
	case payroll.SalaryStatusPending:
		return payroll.SalaryResponse{}, payroll.ErrSalaryNotApproved
	}

	paidAt := time.Now().UTC()
	record.Status = payroll.SalaryStatusPaid
	record.PaidAt = &paidAt

	if err := s.SalaryRepository.Update(ctx, record, payroll.SalaryStatusApproved); err != nil {
		if errors.Is(err, payroll.ErrSalaryAlreadyProcessed) || errors.Is(err, payroll.ErrSalaryNotApproved) {
			return payroll.SalaryResponse{}, err
		}
		return payroll.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	return toResponse(record), nil
}

func (s *PayrollService) List(ctx context.Context, companyID string, filter payroll.SalaryFilter) ([]payroll.SalaryResponse, error) {
	records, err := s.SalaryRepository.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	out := make([]payroll.SalaryResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toResponse(record))
	}
	return out, nil
}

func toComponents(inputs []payroll.ComponentInput) []payroll.SalaryComponent {
	out := make([]payroll.SalaryComponent, 0, len(inputs))
	for _, input := range inputs {
		out = append(out, payroll.SalaryComponent{Name: input.Name, Amount: input.Amount})
	}
	return out
}

func toResponse(record payroll.SalaryRecord) payroll.SalaryResponse {
	resp := payroll.SalaryResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		CompanyID:       record.CompanyID,
		Month:           record.Month,
		Year:            record.Year,
		BaseSalary:      record.BaseSalary,
		Allowances:      record.Allowances,
		Bonuses:         record.Bonuses,
		Deductions:      record.Deductions,
		TotalAllowances: record.TotalAllowances,
		TotalBonuses:    record.TotalBonuses,
		TotalDeductions: record.TotalDeductions,
		GrossSalary:     record.GrossSalary,
		NetSalary:       record.NetSalary,
		Status:          string(record.Status),
		ApprovedBy:      record.ApprovedBy,
		GeneratedAt:     record.GeneratedAt.Format(time.RFC3339),
	}
	if record.PaidAt != nil {
		paidAt := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
