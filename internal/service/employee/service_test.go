package employee

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/repository/memory"
)

const testCompanyID = "1"

func newTestService() *EmployeeService {
	return NewEmployeeService(memory.NewEmployeeRepository())
}

func createTestEmployee(t *testing.T, service *EmployeeService, name, email string) employee.EmployeeResponse {
	t.Helper()
	resp, err := service.Create(context.Background(), testCompanyID, employee.CreateEmployeeRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     "employee",
	})
	require.NoError(t, err)
	return resp
}

func TestCreate_AssignsSequentialEmployeeCodes(t *testing.T) {
	service := newTestService()

	first := createTestEmployee(t, service, "Alice", "alice@example.com")
	second := createTestEmployee(t, service, "Bob", "bob@example.com")

	assert.Equal(t, "EMP001", first.EmployeeCode)
	assert.Equal(t, "EMP002", second.EmployeeCode)
	assert.True(t, first.IsActive)
}

func TestCreate_CodeSequenceSkipsCodelessOwner(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	service := NewEmployeeService(repo)

	// The owner account carries no employee code; the coded directory
	// runs through EMP007.
	_, err := repo.Create(ctx, employee.Employee{
		CompanyID: testCompanyID,
		Name:      "Owner",
		Email:     "owner@example.com",
		Role:      employee.RoleOwner,
		IsActive:  true,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{
		CompanyID:    testCompanyID,
		EmployeeCode: "EMP007",
		Name:         "Rachel",
		Email:        "rachel@example.com",
		Role:         employee.RoleEmployee,
		IsActive:     true,
	})
	require.NoError(t, err)

	hired := createTestEmployee(t, service, "Alice", "alice@example.com")
	assert.Equal(t, "EMP008", hired.EmployeeCode)
}

func TestCreate_ConcurrentHiresMintUniqueCodes(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	type outcome struct {
		code string
		err  error
	}

	const hires = 10
	outcomes := make(chan outcome, hires)
	var wg sync.WaitGroup
	for i := 0; i < hires; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := service.Create(ctx, testCompanyID, employee.CreateEmployeeRequest{
				Name:     fmt.Sprintf("Hire %d", n),
				Email:    fmt.Sprintf("hire%d@example.com", n),
				Password: "password123",
				Role:     "employee",
			})
			outcomes <- outcome{code: resp.EmployeeCode, err: err}
		}(i)
	}
	wg.Wait()
	close(outcomes)

	seen := make(map[string]bool)
	for out := range outcomes {
		require.NoError(t, out.err)
		assert.False(t, seen[out.code], "duplicate code %s", out.code)
		seen[out.code] = true
	}
	require.Len(t, seen, hires)
	assert.True(t, seen["EMP001"])
	assert.True(t, seen[fmt.Sprintf("EMP%03d", hires)])
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	service := newTestService()
	createTestEmployee(t, service, "Alice", "alice@example.com")

	_, err := service.Create(context.Background(), testCompanyID, employee.CreateEmployeeRequest{
		Name:     "Alice Again",
		Email:    "ALICE@example.com",
		Password: "password123",
		Role:     "employee",
	})
	require.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdate_AppliesPartialChanges(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	created := createTestEmployee(t, service, "Alice", "alice@example.com")

	name := "Alice Doe"
	phone := "+1-555-0100"
	updated, err := service.Update(ctx, testCompanyID, created.ID, employee.UpdateEmployeeRequest{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Doe", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.EmployeeCode, updated.EmployeeCode)
}

func TestDeactivate_KeepsDirectoryEntry(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	created := createTestEmployee(t, service, "Alice", "alice@example.com")

	require.NoError(t, service.Deactivate(ctx, testCompanyID, created.ID))

	got, err := service.Get(ctx, testCompanyID, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestGet_UnknownEmployeeReturnsNotFound(t *testing.T) {
	service := newTestService()

	_, err := service.Get(context.Background(), testCompanyID, "missing")
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
