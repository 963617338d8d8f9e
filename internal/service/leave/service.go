package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/h496242/hrm-backend-go/internal/domain/leave"
)

type LeaveService struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) *LeaveService {
	return &LeaveService{
		LeaveRequestRepository: leaveRequestRepository,
	}
}

func (s *LeaveService) Apply(ctx context.Context, companyID string, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse fromDate: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse toDate: %w", err)
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		FromDate:   fromDate,
		ToDate:     toDate,
		TotalDays:  leave.InclusiveDayCount(fromDate, toDate),
		Reason:     req.Reason,
		Type:       leave.Type(req.Type),
		Status:     leave.StatusPending,
		AppliedAt:  time.Now().UTC(),
	}

	stored, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(stored), nil
}

func (s *LeaveService) Review(ctx context.Context, companyID string, requestID string, reviewerID string, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	reviewedAt := time.Now().UTC()
	request.Status = leave.Status(req.Status)
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.Comments = req.Comments

	// The repository re-checks the pending status under its lock: a
	// decision that lost the race surfaces as ErrLeaveAlreadyProcessed.
	if err := s.LeaveRequestRepository.Update(ctx, request, leave.StatusPending); err != nil {
		if errors.Is(err, leave.ErrLeaveAlreadyProcessed) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toResponse(request), nil
}

func (s *LeaveService) ListForCompany(ctx context.Context, companyID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func (s *LeaveService) ListForEmployee(ctx context.Context, companyID string, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by employee: %w", err)
	}
	return toResponses(requests), nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		CompanyID:  request.CompanyID,
		FromDate:   request.FromDate.Format("2006-01-02"),
		ToDate:     request.ToDate.Format("2006-01-02"),
		TotalDays:  request.TotalDays,
		Reason:     request.Reason,
		Type:       string(request.Type),
		Status:     string(request.Status),
		ReviewedBy: request.ReviewedBy,
		Comments:   request.Comments,
		AppliedAt:  request.AppliedAt.Format(time.RFC3339),
	}
	if request.ReviewedAt != nil {
		reviewedAt := request.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, toResponse(request))
	}
	return out
}
