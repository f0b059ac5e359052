package service

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// LeaveServiceOptions groups dependencies for LeaveService.
type LeaveServiceOptions struct {
	API ports.LeaveAPI
}

// LeaveService orchestrates leave management against the backend.
type LeaveService struct {
	api ports.LeaveAPI
}

// NewLeaveService constructs a new LeaveService.
func NewLeaveService(opts LeaveServiceOptions) *LeaveService {
	if opts.API == nil {
		panic("LeaveAPI is required")
	}
	return &LeaveService{api: opts.API}
}

// ListAll returns every leave request.
func (s *LeaveService) ListAll(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	return s.api.ListAllLeaves(ctx, cred)
}

// ListPending returns leave requests still awaiting a decision, for the
// manager review queue.
func (s *LeaveService) ListPending(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	leaves, err := s.api.ListAllLeaves(ctx, cred)
	if err != nil {
		return nil, err
	}
	pending := make([]model.Leave, 0, len(leaves))
	for _, l := range leaves {
		if l.IsPending() {
			pending = append(pending, l)
		}
	}
	return pending, nil
}

// ListApproved returns all approved leave requests.
func (s *LeaveService) ListApproved(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	return s.api.ListApprovedLeaves(ctx, cred)
}

// ListActiveToday returns approved leaves covering today's date.
func (s *LeaveService) ListActiveToday(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	return s.api.ListActiveTodayLeaves(ctx, cred)
}

// ListMine returns the calling user's own leave requests.
func (s *LeaveService) ListMine(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	return s.api.ListMyLeaves(ctx, cred)
}

// Summary returns an employee's leave counters.
func (s *LeaveService) Summary(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error) {
	if employeeID <= 0 {
		return model.LeaveSummary{}, ports.ErrNotFound
	}
	return s.api.GetLeaveSummary(ctx, cred, employeeID)
}

// Submit files a new leave request after validating the date range.
func (s *LeaveService) Submit(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error) {
	if err := validateLeaveRequest(req); err != nil {
		return model.Leave{}, err
	}
	return s.api.SubmitLeaveRequest(ctx, cred, req)
}

// Approve marks a pending leave request approved.
func (s *LeaveService) Approve(ctx context.Context, cred domainauth.Credential, id int64) error {
	if id <= 0 {
		return ports.ErrNotFound
	}
	return s.api.ApproveLeave(ctx, cred, id)
}

// Reject marks a pending leave request rejected.
func (s *LeaveService) Reject(ctx context.Context, cred domainauth.Credential, id int64) error {
	if id <= 0 {
		return ports.ErrNotFound
	}
	return s.api.RejectLeave(ctx, cred, id)
}

func validateLeaveRequest(req model.CreateLeaveRequest) error {
	if req.LeaveType == "" {
		return errors.New("leave type is required")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return errors.New("start date must be yyyy-mm-dd")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return errors.New("end date must be yyyy-mm-dd")
	}
	if end.Before(start) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}
