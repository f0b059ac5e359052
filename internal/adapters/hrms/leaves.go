package hrms

import (
	"context"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// ListAllLeaves fetches every leave request.
func (c *Client) ListAllLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	var out []model.Leave
	if err := c.get(ctx, cred, "/leaves/allLeaves", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListApprovedLeaves fetches all approved leave requests.
func (c *Client) ListApprovedLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	var out []model.Leave
	if err := c.get(ctx, cred, "/leaves/allApproved", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveTodayLeaves fetches leaves that are active today.
func (c *Client) ListActiveTodayLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	var out []model.Leave
	if err := c.get(ctx, cred, "/leaves/active-today", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyLeaves fetches the calling user's own leave requests.
func (c *Client) ListMyLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	var out []model.Leave
	if err := c.get(ctx, cred, "/leaves/leaveStatus", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLeaveSummary fetches the aggregate leave stats for one employee.
func (c *Client) GetLeaveSummary(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error) {
	var out model.LeaveSummary
	if err := c.get(ctx, cred, fmt.Sprintf("/leaves/%d/leaves/summary", employeeID), &out); err != nil {
		return model.LeaveSummary{}, err
	}
	return out, nil
}

// SubmitLeaveRequest submits a new leave request for the calling user.
func (c *Client) SubmitLeaveRequest(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error) {
	var out model.Leave
	if err := c.postJSON(ctx, cred, "/leaves/leaveRequest", req, &out); err != nil {
		return model.Leave{}, err
	}
	return out, nil
}

// ApproveLeave marks a leave request approved.
func (c *Client) ApproveLeave(ctx context.Context, cred domainauth.Credential, id int64) error {
	return c.putJSON(ctx, cred, fmt.Sprintf("/leaves/%d/approve", id), nil, nil)
}

// RejectLeave marks a leave request rejected.
func (c *Client) RejectLeave(ctx context.Context, cred domainauth.Credential, id int64) error {
	return c.putJSON(ctx, cred, fmt.Sprintf("/leaves/%d/reject", id), nil, nil)
}
