package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h496242/hrm-backend-go/internal/config"
	"github.com/h496242/hrm-backend-go/internal/fixtures"
	"github.com/h496242/hrm-backend-go/internal/pkg/jwt"
	"github.com/h496242/hrm-backend-go/internal/repository/memory"
	attendanceService "github.com/h496242/hrm-backend-go/internal/service/attendance"
	serviceAuth "github.com/h496242/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/h496242/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/h496242/hrm-backend-go/internal/service/employee"
	leaveService "github.com/h496242/hrm-backend-go/internal/service/leave"
	payrollService "github.com/h496242/hrm-backend-go/internal/service/payroll"
)

const (
	testCompanyID = "1"
	testJWTSecret = "test-secret-key-for-jwt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:        8080,
			Env:         "test",
			LogLevel:    "error",
			FrontendURL: "http://localhost:3000",
		},
		JWT: config.JWTConfig{
			Secret:           testJWTSecret,
			AccessExpiration: "1h",
		},
		Company: config.CompanyConfig{DefaultID: testCompanyID},
	}

	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRequestRepo := memory.NewLeaveRequestRepository()
	salaryRepo := memory.NewSalaryRepository()

	require.NoError(t, fixtures.Seed(context.Background(), testCompanyID, fixtures.Repositories{
		Employees:  employeeRepo,
		Attendance: attendanceRepo,
		Leave:      leaveRequestRepo,
		Salaries:   salaryRepo,
	}))

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(serviceAuth.NewAuthService(employeeRepo, jwtService), testCompanyID),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo)),
		NewPayrollHandler(payrollService.NewPayrollService(salaryRepo)),
		NewLeaveHandler(leaveService.NewLeaveService(leaveRequestRepo)),
		NewDashboardHandler(dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo, salaryRepo)),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, method, url, token string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	status, env := doRequest(t, http.MethodPost, baseURL+"/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := newTestServer(t)

	status, env := doRequest(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{
		"email":    fixtures.OwnerEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	server := newTestServer(t)

	status, _ := doRequest(t, http.MethodGet, server.URL+"/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProtectedRoutes_RejectNonAccessToken(t *testing.T) {
	server := newTestServer(t)

	// A well-signed token of any other type must not pass.
	tokenAuth := jwtauth.New("HS256", []byte(testJWTSecret), nil)
	_, token, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":    "1",
		"company_id": testCompanyID,
		"type":       "refresh",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	status, env := doRequest(t, http.MethodGet, server.URL+"/api/users", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestEmployeeRole_CannotGenerateSalary(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server.URL, "emily.rodriguez@company.com", fixtures.DemoPassword)

	status, env := doRequest(t, http.MethodPost, server.URL+"/api/salary", token, map[string]interface{}{
		"employeeId": "4",
		"month":      6,
		"year":       2024,
		"baseSalary": "5000",
	})
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestMarkAttendance_ValidationFailureReturns422(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server.URL, fixtures.OwnerEmail, fixtures.OwnerPassword)

	status, env := doRequest(t, http.MethodPost, server.URL+"/api/attendance", token, map[string]interface{}{
		"employeeId":   "4",
		"date":         "2024-06-10",
		"status":       "present",
		"checkInTime":  "17:00",
		"checkOutTime": "09:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "checkOutTime")
}

func TestSalaryLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server.URL, fixtures.OwnerEmail, fixtures.OwnerPassword)

	status, env := doRequest(t, http.MethodPost, server.URL+"/api/salary", token, map[string]interface{}{
		"employeeId": "7",
		"month":      6,
		"year":       2024,
		"baseSalary": "5000",
		"allowances": []map[string]interface{}{{"name": "Transport", "amount": "300"}},
		"bonuses":    []map[string]interface{}{{"name": "Performance", "amount": "500"}},
		"deductions": []map[string]interface{}{{"name": "Tax", "amount": "800"}},
	})
	require.Equal(t, http.StatusCreated, status)

	var generated struct {
		ID        string `json:"id"`
		NetSalary string `json:"netSalary"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &generated))
	assert.Equal(t, "5000", generated.NetSalary)
	assert.Equal(t, "pending", generated.Status)

	// Paying before approval conflicts.
	status, _ = doRequest(t, http.MethodPost, fmt.Sprintf("%s/api/salary/%s/pay", server.URL, generated.ID), token, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(t, http.MethodPost, fmt.Sprintf("%s/api/salary/%s/approve", server.URL, generated.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = doRequest(t, http.MethodPost, fmt.Sprintf("%s/api/salary/%s/pay", server.URL, generated.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var paid struct {
		Status string  `json:"status"`
		PaidAt *string `json:"paidAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &paid))
	assert.Equal(t, "paid", paid.Status)
	assert.NotNil(t, paid.PaidAt)
}

func TestLeaveLifecycle(t *testing.T) {
	server := newTestServer(t)
	ownerToken := login(t, server.URL, fixtures.OwnerEmail, fixtures.OwnerPassword)
	employeeToken := login(t, server.URL, "david.johnson@company.com", fixtures.DemoPassword)

	status, env := doRequest(t, http.MethodPost, server.URL+"/api/leave/apply", employeeToken, map[string]string{
		"employeeId": "5",
		"fromDate":   "2024-07-01",
		"toDate":     "2024-07-03",
		"reason":     "Summer break",
		"type":       "annual",
	})
	require.Equal(t, http.StatusCreated, status)

	var applied struct {
		ID        string `json:"id"`
		TotalDays int    `json:"totalDays"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &applied))
	assert.Equal(t, 3, applied.TotalDays)
	assert.Equal(t, "pending", applied.Status)

	// Plain employees cannot review.
	status, _ = doRequest(t, http.MethodPut, fmt.Sprintf("%s/api/leave/%s/status", server.URL, applied.ID), employeeToken, map[string]string{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = doRequest(t, http.MethodPut, fmt.Sprintf("%s/api/leave/%s/status", server.URL, applied.ID), ownerToken, map[string]string{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, status)

	var reviewed struct {
		Status     string  `json:"status"`
		ReviewedBy *string `json:"reviewedBy"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reviewed))
	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "1", *reviewed.ReviewedBy)

	// A decided request stays decided.
	status, _ = doRequest(t, http.MethodPut, fmt.Sprintf("%s/api/leave/%s/status", server.URL, applied.ID), ownerToken, map[string]string{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestDashboardStats_ReflectsSeedData(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server.URL, fixtures.OwnerEmail, fixtures.OwnerPassword)

	status, env := doRequest(t, http.MethodGet, server.URL+"/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, status)

	var stats struct {
		TotalEmployees   int `json:"totalEmployees"`
		PresentToday     int `json:"presentToday"`
		AbsentToday      int `json:"absentToday"`
		PendingLeaves    int `json:"pendingLeaves"`
		TotalDepartments int `json:"totalDepartments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 8, stats.TotalEmployees)
	assert.Equal(t, 2, stats.PresentToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, 1, stats.PendingLeaves)
	assert.Equal(t, 5, stats.TotalDepartments)
}

func TestDirectory_ListAndDeactivate(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server.URL, fixtures.OwnerEmail, fixtures.OwnerPassword)

	status, env := doRequest(t, http.MethodGet, server.URL+"/api/users", token, nil)
	require.Equal(t, http.StatusOK, status)

	var users []struct {
		ID       string `json:"id"`
		IsActive bool   `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 8)

	status, _ = doRequest(t, http.MethodDelete, server.URL+"/api/users/7", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = doRequest(t, http.MethodGet, server.URL+"/api/users/7", token, nil)
	require.Equal(t, http.StatusOK, status)

	var user struct {
		IsActive bool `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.False(t, user.IsActive)
}
