// Package fixtures loads the demo company into the memory repositories
// at startup so the API serves data from the first request.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/domain/leave"
	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
	"github.com/h496242/hrm-backend-go/internal/repository/memory"
)

// OwnerPassword and DemoPassword are the demo login credentials.
const (
	OwnerEmail    = "h496242@gmail.com"
	OwnerPassword = "123456"
	DemoPassword  = "password123"
)

type Repositories struct {
	Employees  *memory.EmployeeRepository
	Attendance *memory.AttendanceRepository
	Leave      *memory.LeaveRequestRepository
	Salaries   *memory.SalaryRepository
}

// Seed populates the repositories with the demo company's departments,
// directory, and sample attendance, salary and leave records.
func Seed(ctx context.Context, companyID string, repos Repositories) error {
	if err := seedDepartments(ctx, companyID, repos.Employees); err != nil {
		return err
	}
	if err := seedEmployees(ctx, companyID, repos.Employees); err != nil {
		return err
	}
	if err := seedAttendance(ctx, companyID, repos.Attendance); err != nil {
		return err
	}
	if err := seedSalaries(ctx, companyID, repos.Salaries); err != nil {
		return err
	}
	if err := seedLeaveRequests(ctx, companyID, repos.Leave); err != nil {
		return err
	}
	return nil
}

func seedDepartments(ctx context.Context, companyID string, repo *memory.EmployeeRepository) error {
	departments := []struct {
		id, name, description string
	}{
		{"1", "Administration", "Company administration and management"},
		{"2", "Human Resources", "HR operations and employee management"},
		{"3", "Engineering", "Software development and technical operations"},
		{"4", "Marketing", "Marketing and brand management"},
		{"5", "Sales", "Sales and business development"},
	}

	for _, d := range departments {
		description := d.description
		_, err := repo.AddDepartment(ctx, employee.Department{
			ID:          d.id,
			CompanyID:   companyID,
			Name:        d.name,
			Description: &description,
			IsActive:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to seed department %q: %w", d.name, err)
		}
	}
	return nil
}

func seedEmployees(ctx context.Context, companyID string, repo *memory.EmployeeRepository) error {
	type seedEmployee struct {
		id, code, name, email string
		phone, gender, dob    string
		address, departmentID string
		role                  employee.Role
		joinDate, password    string
		inactive              bool
	}

	employees := []seedEmployee{
		{
			id: "1", name: "Hasnain", email: OwnerEmail,
			role: employee.RoleOwner, password: OwnerPassword, joinDate: "2022-01-01",
		},
		{
			id: "2", code: "EMP001", name: "Sarah Wilson", email: "sarah.wilson@company.com",
			phone: "+1 (555) 123-4567", gender: "female", dob: "1988-03-15",
			address: "123 Main St, City, State 12345", departmentID: "1",
			role: employee.RoleAdmin, joinDate: "2022-01-15", password: DemoPassword,
		},
		{
			id: "3", code: "EMP002", name: "Michael Chen", email: "michael.chen@company.com",
			phone: "+1 (555) 234-5678", gender: "male", dob: "1985-07-22",
			address: "456 Oak Ave, City, State 12345", departmentID: "2",
			role: employee.RoleHR, joinDate: "2022-02-01", password: DemoPassword,
		},
		{
			id: "4", code: "EMP003", name: "Emily Rodriguez", email: "emily.rodriguez@company.com",
			phone: "+1 (555) 345-6789", gender: "female", dob: "1992-11-08",
			address: "789 Pine St, City, State 12345", departmentID: "3",
			role: employee.RoleEmployee, joinDate: "2022-03-10", password: DemoPassword,
		},
		{
			id: "5", code: "EMP004", name: "David Johnson", email: "david.johnson@company.com",
			phone: "+1 (555) 456-7890", gender: "male", dob: "1989-05-14",
			address: "321 Elm Dr, City, State 12345", departmentID: "3",
			role: employee.RoleEmployee, joinDate: "2022-04-05", password: DemoPassword,
		},
		{
			id: "6", code: "EMP005", name: "Lisa Thompson", email: "lisa.thompson@company.com",
			phone: "+1 (555) 567-8901", gender: "female", dob: "1987-12-03",
			address: "654 Maple Ln, City, State 12345", departmentID: "4",
			role: employee.RoleEmployee, joinDate: "2022-05-20", password: DemoPassword,
		},
		{
			id: "7", code: "EMP006", name: "James Martinez", email: "james.martinez@company.com",
			phone: "+1 (555) 678-9012", gender: "male", dob: "1991-09-18",
			address: "987 Cedar Rd, City, State 12345", departmentID: "5",
			role: employee.RoleEmployee, joinDate: "2022-06-15", password: DemoPassword,
		},
		{
			id: "8", code: "EMP007", name: "Rachel Kim", email: "rachel.kim@company.com",
			phone: "+1 (555) 789-0123", gender: "female", dob: "1993-02-25",
			address: "147 Birch Ave, City, State 12345", departmentID: "3",
			role: employee.RoleEmployee, joinDate: "2022-07-01", password: DemoPassword,
			inactive: true,
		},
	}

	for _, e := range employees {
		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", e.email, err)
		}

		joinDate, err := time.Parse("2006-01-02", e.joinDate)
		if err != nil {
			return fmt.Errorf("failed to parse join date for %q: %w", e.email, err)
		}

		entry := employee.Employee{
			ID:           e.id,
			CompanyID:    companyID,
			EmployeeCode: e.code,
			Name:         e.name,
			Email:        e.email,
			PasswordHash: string(hash),
			Role:         e.role,
			JoinDate:     &joinDate,
			IsActive:     !e.inactive,
		}
		if e.phone != "" {
			entry.Phone = strPtr(e.phone)
		}
		if e.gender != "" {
			entry.Gender = strPtr(e.gender)
		}
		if e.dob != "" {
			entry.DOB = strPtr(e.dob)
		}
		if e.address != "" {
			entry.Address = strPtr(e.address)
		}
		if e.departmentID != "" {
			entry.DepartmentID = strPtr(e.departmentID)
		}

		if _, err := repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", e.email, err)
		}
	}
	return nil
}

func seedAttendance(ctx context.Context, companyID string, repo *memory.AttendanceRepository) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	records := []attendance.Attendance{
		{
			EmployeeID:   "4",
			CompanyID:    companyID,
			Date:         today,
			Status:       attendance.StatusPresent,
			CheckInTime:  strPtr("09:00"),
			CheckOutTime: strPtr("17:30"),
			TotalHours:   8.5,
		},
		{
			EmployeeID:   "5",
			CompanyID:    companyID,
			Date:         today,
			Status:       attendance.StatusLate,
			CheckInTime:  strPtr("09:30"),
			CheckOutTime: strPtr("17:30"),
			TotalHours:   8,
		},
		{
			EmployeeID: "6",
			CompanyID:  companyID,
			Date:       today,
			Status:     attendance.StatusAbsent,
		},
	}

	for _, record := range records {
		if _, err := repo.Upsert(ctx, record); err != nil {
			return fmt.Errorf("failed to seed attendance for employee %q: %w", record.EmployeeID, err)
		}
	}
	return nil
}

func seedSalaries(ctx context.Context, companyID string, repo *memory.SalaryRepository) error {
	now := time.Now().UTC()
	month, year := int(now.Month()), now.Year()
	approvedBy := "2"

	records := []payroll.SalaryRecord{
		{
			EmployeeID:      "4",
			CompanyID:       companyID,
			Month:           month,
			Year:            year,
			BaseSalary:      decimal.NewFromInt(5000),
			Allowances:      []payroll.SalaryComponent{{Name: "Transport", Amount: decimal.NewFromInt(300)}},
			Bonuses:         []payroll.SalaryComponent{{Name: "Performance", Amount: decimal.NewFromInt(500)}},
			Deductions:      []payroll.SalaryComponent{{Name: "Tax", Amount: decimal.NewFromInt(800)}},
			TotalAllowances: decimal.NewFromInt(300),
			TotalBonuses:    decimal.NewFromInt(500),
			TotalDeductions: decimal.NewFromInt(800),
			GrossSalary:     decimal.NewFromInt(5800),
			NetSalary:       decimal.NewFromInt(5000),
			Status:          payroll.SalaryStatusApproved,
			ApprovedBy:      &approvedBy,
			GeneratedAt:     now,
		},
		{
			EmployeeID:      "5",
			CompanyID:       companyID,
			Month:           month,
			Year:            year,
			BaseSalary:      decimal.NewFromInt(4500),
			Allowances:      []payroll.SalaryComponent{{Name: "Transport", Amount: decimal.NewFromInt(300)}},
			Deductions:      []payroll.SalaryComponent{{Name: "Tax", Amount: decimal.NewFromInt(720)}},
			TotalAllowances: decimal.NewFromInt(300),
			TotalBonuses:    decimal.Zero,
			TotalDeductions: decimal.NewFromInt(720),
			GrossSalary:     decimal.NewFromInt(4800),
			NetSalary:       decimal.NewFromInt(4080),
			Status:          payroll.SalaryStatusPending,
			GeneratedAt:     now,
		},
	}

	for _, record := range records {
		if _, err := repo.Replace(ctx, record); err != nil {
			return fmt.Errorf("failed to seed salary for employee %q: %w", record.EmployeeID, err)
		}
	}
	return nil
}

func seedLeaveRequests(ctx context.Context, companyID string, repo *memory.LeaveRequestRepository) error {
	reviewer := "2"

	requests := []leave.LeaveRequest{
		{
			EmployeeID: "4",
			CompanyID:  companyID,
			FromDate:   date(2024, 2, 15),
			ToDate:     date(2024, 2, 17),
			TotalDays:  3,
			Reason:     "Family vacation trip",
			Type:       leave.TypeCasual,
			Status:     leave.StatusPending,
			AppliedAt:  time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID: "5",
			CompanyID:  companyID,
			FromDate:   date(2024, 2, 20),
			ToDate:     date(2024, 2, 21),
			TotalDays:  2,
			Reason:     "Medical appointment and recovery",
			Type:       leave.TypeSick,
			Status:     leave.StatusApproved,
			ReviewedBy: &reviewer,
			ReviewedAt: timePtr(time.Date(2024, 2, 12, 10, 30, 0, 0, time.UTC)),
			Comments:   strPtr("Approved for medical reasons"),
			AppliedAt:  time.Date(2024, 2, 11, 14, 20, 0, 0, time.UTC),
		},
		{
			EmployeeID: "6",
			CompanyID:  companyID,
			FromDate:   date(2024, 1, 25),
			ToDate:     date(2024, 1, 26),
			TotalDays:  2,
			Reason:     "Personal emergency",
			Type:       leave.TypeEmergency,
			Status:     leave.StatusRejected,
			ReviewedBy: &reviewer,
			ReviewedAt: timePtr(time.Date(2024, 1, 24, 16, 45, 0, 0, time.UTC)),
			Comments:   strPtr("Insufficient notice provided"),
			AppliedAt:  time.Date(2024, 1, 24, 15, 30, 0, 0, time.UTC),
		},
	}

	for _, request := range requests {
		if _, err := repo.Create(ctx, request); err != nil {
			return fmt.Errorf("failed to seed leave request for employee %q: %w", request.EmployeeID, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
