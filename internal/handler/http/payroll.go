package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/payroll"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) *PayrollHandlerImpl {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary generated successfully", result)
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	salaryID := chi.URLParam(r, "id")
	if salaryID == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	userID, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Approve(r.Context(), companyID, salaryID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary approved successfully", result)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	salaryID := chi.URLParam(r, "id")
	if salaryID == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.MarkPaid(r.Context(), companyID, salaryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", result)
}

// List implements PayrollHandler. Month and year narrow the listing to
// one payroll period; both must be given together.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter payroll.SalaryFilter
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(w, "month must be an integer", nil)
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		filter.Month = &month
		filter.Year = &year
	}

	result, err := h.payrollService.List(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
