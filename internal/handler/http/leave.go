package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/leave"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	ListCompany(w http.ResponseWriter, r *http.Request)
	ListEmployee(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) *LeaveHandlerImpl {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// Review implements LeaveHandler. The authenticated caller becomes the
// reviewer of record.
func (h *LeaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Review(r.Context(), companyID, requestID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed successfully", result)
}

// ListCompany implements LeaveHandler.
func (h *LeaveHandlerImpl) ListCompany(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListForCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployee implements LeaveHandler.
func (h *LeaveHandlerImpl) ListEmployee(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	result, err := h.leaveService.ListForEmployee(r.Context(), companyID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
