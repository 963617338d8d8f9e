package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
	"github.com/h496242/hrm-backend-go/internal/domain/dashboard"
	"github.com/h496242/hrm-backend-go/internal/domain/employee"
	"github.com/h496242/hrm-backend-go/internal/domain/leave"
	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
)

type DashboardService struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	payroll.SalaryRepository
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	salaryRepository payroll.SalaryRepository,
) *DashboardService {
	return &DashboardService{
		EmployeeRepository:     employeeRepository,
		AttendanceRepository:   attendanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		SalaryRepository:       salaryRepository,
	}
}

func (s *DashboardService) Stats(ctx context.Context, companyID string, now time.Time) (dashboard.DashboardStatsResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return dashboard.DashboardStatsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	activeEmployees := 0
	for _, emp := range employees {
		if emp.IsActive {
			activeEmployees++
		}
	}

	todays, err := s.AttendanceRepository.ListByDate(ctx, companyID, now)
	if err != nil {
		return dashboard.DashboardStatsResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	presentToday, absentToday := 0, 0
	for _, record := range todays {
		switch record.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			presentToday++
		case attendance.StatusAbsent:
			absentToday++
		}
	}

	requests, err := s.LeaveRequestRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return dashboard.DashboardStatsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	pendingLeaves := 0
	for _, request := range requests {
		if request.Status == leave.StatusPending {
			pendingLeaves++
		}
	}

	departments, err := s.EmployeeRepository.ListDepartments(ctx, companyID)
	if err != nil {
		return dashboard.DashboardStatsResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	month, year := int(now.Month()), now.Year()
	salaries, err := s.SalaryRepository.List(ctx, companyID, payroll.SalaryFilter{Month: &month, Year: &year})
	if err != nil {
		return dashboard.DashboardStatsResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	monthlySalary := decimal.Zero
	for _, record := range salaries {
		monthlySalary = monthlySalary.Add(record.NetSalary)
	}

	averageAttendance := 0
	if activeEmployees > 0 {
		averageAttendance = presentToday * 100 / activeEmployees
	}

	return dashboard.DashboardStatsResponse{
		TotalEmployees:    len(employees),
		PresentToday:      presentToday,
		AbsentToday:       absentToday,
		PendingLeaves:     pendingLeaves,
		TotalDepartments:  len(departments),
		AverageAttendance: averageAttendance,
		MonthlySalary:     monthlySalary,
	}, nil
}
