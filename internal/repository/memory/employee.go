package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu          sync.Mutex
	employees   map[string]employee.Employee
	departments map[string]employee.Department
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees:   make(map[string]employee.Employee),
		departments: make(map[string]employee.Department),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createLocked(emp)
}

func (r *EmployeeRepository) CreateWithCode(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.EmployeeCode = r.nextEmployeeCodeLocked(emp.CompanyID)
	return r.createLocked(emp)
}

func (r *EmployeeRepository) createLocked(emp employee.Employee) (employee.Employee, error) {
	for _, existing := range r.employees {
		if existing.CompanyID == emp.CompanyID && strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = now
	}
	if emp.UpdatedAt.IsZero() {
		emp.UpdatedAt = now
	}

	r.employees[emp.ID] = cloneEmployee(emp)
	return cloneEmployee(emp), nil
}

// nextEmployeeCodeLocked continues the EMP### sequence from the highest
// code on record. Codeless entries are skipped, so the owner account does
// not shift the numbering.
func (r *EmployeeRepository) nextEmployeeCodeLocked(companyID string) string {
	highest := 0
	for _, emp := range r.employees {
		if emp.CompanyID != companyID {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(emp.EmployeeCode, "EMP"))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("EMP%03d", highest+1)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string, companyID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.employees {
		if emp.CompanyID == companyID && strings.EqualFold(emp.Email, email) {
			return cloneEmployee(emp), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.CompanyID == companyID {
			out = append(out, cloneEmployee(emp))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].EmployeeCode < out[j].EmployeeCode
	})
	return out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[emp.ID]
	if !ok || existing.CompanyID != emp.CompanyID {
		return employee.ErrEmployeeNotFound
	}
	emp.UpdatedAt = time.Now().UTC()
	r.employees[emp.ID] = cloneEmployee(emp)
	return nil
}

func (r *EmployeeRepository) ListDepartments(ctx context.Context, companyID string) ([]employee.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []employee.Department
	for _, dept := range r.departments {
		if dept.CompanyID == companyID {
			out = append(out, cloneDepartment(dept))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AddDepartment seeds a department; departments are read-only at runtime.
func (r *EmployeeRepository) AddDepartment(ctx context.Context, dept employee.Department) (employee.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dept.ID == "" {
		dept.ID = uuid.NewString()
	}
	if dept.CreatedAt.IsZero() {
		dept.CreatedAt = time.Now().UTC()
	}
	r.departments[dept.ID] = cloneDepartment(dept)
	return cloneDepartment(dept), nil
}

func cloneEmployee(e employee.Employee) employee.Employee {
	out := e
	out.Phone = cloneStringPtr(e.Phone)
	out.Gender = cloneStringPtr(e.Gender)
	out.DOB = cloneStringPtr(e.DOB)
	out.Address = cloneStringPtr(e.Address)
	out.DepartmentID = cloneStringPtr(e.DepartmentID)
	out.JoinDate = cloneTimePtr(e.JoinDate)
	return out
}

func cloneDepartment(d employee.Department) employee.Department {
	out := d
	out.Description = cloneStringPtr(d.Description)
	return out
}
