package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/h496242/hrm-backend-go/internal/config"
	"github.com/h496242/hrm-backend-go/internal/fixtures"
	appHTTP "github.com/h496242/hrm-backend-go/internal/handler/http"
	"github.com/h496242/hrm-backend-go/internal/pkg/jwt"
	"github.com/h496242/hrm-backend-go/internal/repository/memory"
	attendanceService "github.com/h496242/hrm-backend-go/internal/service/attendance"
	serviceAuth "github.com/h496242/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/h496242/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/h496242/hrm-backend-go/internal/service/employee"
	leaveService "github.com/h496242/hrm-backend-go/internal/service/leave"
	payrollService "github.com/h496242/hrm-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRequestRepo := memory.NewLeaveRequestRepository()
	salaryRepo := memory.NewSalaryRepository()

	if err := fixtures.Seed(context.Background(), cfg.Company.DefaultID, fixtures.Repositories{
		Employees:  employeeRepo,
		Attendance: attendanceRepo,
		Leave:      leaveRequestRepo,
		Salaries:   salaryRepo,
	}); err != nil {
		log.Fatal("Failed to seed demo data: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(salaryRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo, salaryRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, cfg.Company.DefaultID)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		leaveHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
