package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h496242/hrm-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	r.requests[request.ID] = cloneLeaveRequest(request)
	return cloneLeaveRequest(request), nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok || request.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return cloneLeaveRequest(request), nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest, expected leave.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.requests[request.ID]
	if !ok || existing.CompanyID != request.CompanyID {
		return leave.ErrLeaveRequestNotFound
	}
	if existing.Status != expected {
		return leave.ErrLeaveAlreadyProcessed
	}
	r.requests[request.ID] = cloneLeaveRequest(request)
	return nil
}

func (r *LeaveRequestRepository) ListByCompany(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.CompanyID == companyID {
			out = append(out, cloneLeaveRequest(request))
		}
	}
	sortLeaveRequests(out)
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, companyID string, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.CompanyID == companyID && request.EmployeeID == employeeID {
			out = append(out, cloneLeaveRequest(request))
		}
	}
	sortLeaveRequests(out)
	return out, nil
}

// sortLeaveRequests orders newest application first, id as tie-breaker.
func sortLeaveRequests(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].AppliedAt.Equal(requests[j].AppliedAt) {
			return requests[i].AppliedAt.After(requests[j].AppliedAt)
		}
		return requests[i].ID < requests[j].ID
	})
}

func cloneLeaveRequest(l leave.LeaveRequest) leave.LeaveRequest {
	out := l
	out.ReviewedBy = cloneStringPtr(l.ReviewedBy)
	out.ReviewedAt = cloneTimePtr(l.ReviewedAt)
	out.Comments = cloneStringPtr(l.Comments)
	return out
}
