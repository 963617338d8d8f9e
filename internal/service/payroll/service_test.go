package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
	"github.com/h496242/hrm-backend-go/internal/repository/memory"
)

const testCompanyID = "1"

func newTestService() *PayrollService {
	return NewPayrollService(memory.NewSalaryRepository())
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func generateTestSalary(t *testing.T, service *PayrollService) payroll.SalaryResponse {
	t.Helper()
	resp, err := service.Generate(context.Background(), testCompanyID, payroll.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2024,
		BaseSalary: dec("5000"),
		Allowances: []payroll.ComponentInput{
			{Name: "housing", Amount: dec("300")},
			{Name: "transport", Amount: dec("200")},
		},
		Bonuses: []payroll.ComponentInput{
			{Name: "performance", Amount: dec("300")},
		},
		Deductions: []payroll.ComponentInput{
			{Name: "tax", Amount: dec("600")},
			{Name: "insurance", Amount: dec("200")},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestGenerate_DerivesTotalsGrossAndNet(t *testing.T) {
	service := newTestService()

	resp := generateTestSalary(t, service)

	assert.True(t, resp.TotalAllowances.Equal(dec("500")), "allowances: %s", resp.TotalAllowances)
	assert.True(t, resp.TotalBonuses.Equal(dec("300")), "bonuses: %s", resp.TotalBonuses)
	assert.True(t, resp.TotalDeductions.Equal(dec("800")), "deductions: %s", resp.TotalDeductions)
	assert.True(t, resp.GrossSalary.Equal(dec("5800")), "gross: %s", resp.GrossSalary)
	assert.True(t, resp.NetSalary.Equal(dec("5000")), "net: %s", resp.NetSalary)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.ApprovedBy)
	assert.Nil(t, resp.PaidAt)
}

func TestGenerate_EmptyComponentListsSumToZero(t *testing.T) {
	service := newTestService()

	resp, err := service.Generate(context.Background(), testCompanyID, payroll.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2024,
		BaseSalary: dec("4200.50"),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAllowances.IsZero())
	assert.True(t, resp.TotalBonuses.IsZero())
	assert.True(t, resp.TotalDeductions.IsZero())
	assert.True(t, resp.GrossSalary.Equal(dec("4200.50")))
	assert.True(t, resp.NetSalary.Equal(dec("4200.50")))
}

func TestGenerate_ReplacesRecordForSamePeriod(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	first := generateTestSalary(t, service)

	// Regenerating the same period discards the prior record, even one
	// that was already approved.
	_, err := service.Approve(ctx, testCompanyID, first.ID, "approver-1")
	require.NoError(t, err)

	second, err := service.Generate(ctx, testCompanyID, payroll.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2024,
		BaseSalary: dec("5500"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "pending", second.Status)

	records, err := service.List(ctx, testCompanyID, payroll.SalaryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
}

func TestGenerate_RejectsInvalidPeriodAndAmounts(t *testing.T) {
	service := newTestService()

	_, err := service.Generate(context.Background(), testCompanyID, payroll.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      13,
		Year:       0,
		BaseSalary: dec("-100"),
		Deductions: []payroll.ComponentInput{
			{Name: "", Amount: dec("-50")},
		},
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "year")
	assert.Contains(t, fields, "baseSalary")
	assert.Contains(t, fields, "deductions")
}

func TestApprove_TransitionsPendingToApproved(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	approved, err := service.Approve(ctx, testCompanyID, generated.ID, "approver-1")
	require.NoError(t, err)

	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "approver-1", *approved.ApprovedBy)
}

func TestApprove_SecondApprovalConflicts(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	_, err := service.Approve(ctx, testCompanyID, generated.ID, "approver-1")
	require.NoError(t, err)

	_, err = service.Approve(ctx, testCompanyID, generated.ID, "approver-2")
	require.ErrorIs(t, err, payroll.ErrSalaryAlreadyProcessed)
}

func TestApprove_ConcurrentApprovalsOnlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	const approvers = 16
	errs := make(chan error, approvers)
	var wg sync.WaitGroup
	for i := 0; i < approvers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.Approve(ctx, testCompanyID, generated.ID, fmt.Sprintf("approver-%d", n))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, payroll.ErrSalaryAlreadyProcessed)
	}
	assert.Equal(t, 1, succeeded)

	records, err := service.List(ctx, testCompanyID, payroll.SalaryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "approved", records[0].Status)
	require.NotNil(t, records[0].ApprovedBy)
}

func TestMarkPaid_ConcurrentPaymentsOnlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	_, err := service.Approve(ctx, testCompanyID, generated.ID, "approver-1")
	require.NoError(t, err)

	const payers = 16
	errs := make(chan error, payers)
	var wg sync.WaitGroup
	for i := 0; i < payers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.MarkPaid(ctx, testCompanyID, generated.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, payroll.ErrSalaryAlreadyProcessed)
	}
	assert.Equal(t, 1, succeeded)
}

func TestMarkPaid_RequiresApproval(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	_, err := service.MarkPaid(ctx, testCompanyID, generated.ID)
	require.ErrorIs(t, err, payroll.ErrSalaryNotApproved)
}

func TestMarkPaid_TransitionsApprovedToPaid(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	generated := generateTestSalary(t, service)

	_, err := service.Approve(ctx, testCompanyID, generated.ID, "approver-1")
	require.NoError(t, err)

	paid, err := service.MarkPaid(ctx, testCompanyID, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = service.MarkPaid(ctx, testCompanyID, generated.ID)
	require.ErrorIs(t, err, payroll.ErrSalaryAlreadyProcessed)
}

func TestList_FiltersByPeriod(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	generateTestSalary(t, service)

	_, err := service.Generate(ctx, testCompanyID, payroll.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      4,
		Year:       2024,
		BaseSalary: dec("5000"),
	})
	require.NoError(t, err)

	month, year := 4, 2024
	records, err := service.List(ctx, testCompanyID, payroll.SalaryFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].Month)
}

func TestApprove_UnknownRecordReturnsNotFound(t *testing.T) {
	service := newTestService()

	_, err := service.Approve(context.Background(), testCompanyID, "missing", "approver-1")
	require.ErrorIs(t, err, payroll.ErrSalaryNotFound)
}
