package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
	"github.com/h496242/hrm-backend-go/internal/pkg/validator"
)

type AttendanceService struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		AttendanceRepository: attendanceRepository,
	}
}

func (s *AttendanceService) Mark(ctx context.Context, companyID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	record := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		CompanyID:    companyID,
		Date:         date,
		Status:       attendance.Status(req.Status),
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		TotalHours:   workedHours(req.CheckInTime, req.CheckOutTime),
		Notes:        req.Notes,
	}

	stored, err := s.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return toResponse(stored), nil
}

func (s *AttendanceService) GetByDate(ctx context.Context, companyID string, dateStr string) ([]attendance.AttendanceResponse, error) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid calendar date in YYYY-MM-DD format",
		}}
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	return toResponses(records), nil
}

func (s *AttendanceService) GetEmployeeAttendance(ctx context.Context, companyID string, employeeID string, fromStr, toStr string) ([]attendance.AttendanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "employeeId",
			Message: "employeeId is required",
		}}
	}

	var from, to *time.Time
	if fromStr != "" {
		parsed, ok := validator.IsValidDate(fromStr)
		if !ok {
			return nil, validator.ValidationErrors{{
				Field:   "from",
				Message: "from must be a valid calendar date in YYYY-MM-DD format",
			}}
		}
		from = &parsed
	}
	if toStr != "" {
		parsed, ok := validator.IsValidDate(toStr)
		if !ok {
			return nil, validator.ValidationErrors{{
				Field:   "to",
				Message: "to must be a valid calendar date in YYYY-MM-DD format",
			}}
		}
		to = &parsed
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, companyID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}

	return toResponses(records), nil
}

// workedHours derives the wall-clock hours between check-in and check-out.
// Either side missing means zero hours; shifts never cross midnight.
func workedHours(checkIn, checkOut *string) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	in, okIn := validator.IsValidClockTime(*checkIn)
	out, okOut := validator.IsValidClockTime(*checkOut)
	if !okIn || !okOut {
		return 0
	}
	return out.Sub(in).Hours()
}

func toResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		CompanyID:    record.CompanyID,
		Date:         record.Date.Format("2006-01-02"),
		Status:       string(record.Status),
		CheckInTime:  record.CheckInTime,
		CheckOutTime: record.CheckOutTime,
		TotalHours:   record.TotalHours,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toResponse(record))
	}
	return out
}
