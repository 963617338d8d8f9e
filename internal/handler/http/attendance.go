package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandlerImpl {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", result)
}

// GetByDate implements AttendanceHandler. Defaults to today when no
// date query parameter is given.
func (h *AttendanceHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	result, err := h.attendanceService.GetByDate(r.Context(), companyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	result, err := h.attendanceService.GetEmployeeAttendance(r.Context(), companyID, employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
