package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h496242/hrm-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func (r *AttendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Remove the prior mark for this (employee, date) slot, if any.
	for id, existing := range r.records {
		if existing.CompanyID == record.CompanyID &&
			existing.EmployeeID == record.EmployeeID &&
			sameDay(existing.Date, record.Date) {
			delete(r.records, id)
		}
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.records[record.ID] = cloneAttendance(record)
	return cloneAttendance(record), nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok || record.CompanyID != companyID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return cloneAttendance(record), nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, record := range r.records {
		if record.CompanyID == companyID && sameDay(record.Date, date) {
			out = append(out, cloneAttendance(record))
		}
	}
	sortAttendance(out)
	return out, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, companyID string, employeeID string, from, to *time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, record := range r.records {
		if record.CompanyID != companyID || record.EmployeeID != employeeID {
			continue
		}
		if from != nil && record.Date.Before(*from) {
			continue
		}
		if to != nil && record.Date.After(*to) {
			continue
		}
		out = append(out, cloneAttendance(record))
	}
	sortAttendance(out)
	return out, nil
}

// sortAttendance orders newest date first, employee id as tie-breaker so
// listings are stable.
func sortAttendance(records []attendance.Attendance) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func cloneAttendance(a attendance.Attendance) attendance.Attendance {
	out := a
	out.CheckInTime = cloneStringPtr(a.CheckInTime)
	out.CheckOutTime = cloneStringPtr(a.CheckOutTime)
	out.Notes = cloneStringPtr(a.Notes)
	return out
}
