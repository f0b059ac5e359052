package hrms

import (
	"context"
	"fmt"
	"strconv"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// GetReportSummary fetches the company-wide KPI summary.
func (c *Client) GetReportSummary(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error) {
	var out model.ReportSummary
	if err := c.get(ctx, cred, "/report/summary", &out); err != nil {
		return model.ReportSummary{}, err
	}
	return out, nil
}

// GetTopEarners fetches the top-salary employees.
func (c *Client) GetTopEarners(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error) {
	var out []model.Employee
	path := "/report/top-earn?limit=" + strconv.Itoa(limit)
	if err := c.get(ctx, cred, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecentJoiners fetches employees who joined within the last n months.
func (c *Client) GetRecentJoiners(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error) {
	var out []model.Employee
	path := "/report/recent-join?months=" + strconv.Itoa(months)
	if err := c.get(ctx, cred, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepartmentHeadCount fetches headcount per department.
func (c *Client) GetDepartmentHeadCount(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error) {
	var out []model.DepartmentHeadCount
	if err := c.get(ctx, cred, "/report/department-headcount", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLeaveTypeStats fetches per-leave-type decision counts.
func (c *Client) GetLeaveTypeStats(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error) {
	var out []model.LeaveTypeStats
	if err := c.get(ctx, cred, "/report/leave-type-stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSalaryByDepartment fetches salary analytics per department.
func (c *Client) GetSalaryByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error) {
	var out []model.DepartmentSalary
	if err := c.get(ctx, cred, "/report/salary-by-department", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStatusDistribution fetches the ACTIVE/INACTIVE breakdown.
func (c *Client) GetStatusDistribution(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error) {
	var out model.StatusDistribution
	if err := c.get(ctx, cred, "/report/status-distribution", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSalaryPartition fetches employees split above/below the average salary.
func (c *Client) GetSalaryPartition(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error) {
	var out model.SalaryPartition
	if err := c.get(ctx, cred, "/report/salary-partition", &out); err != nil {
		return model.SalaryPartition{}, err
	}
	return out, nil
}

// GetHighSalaryDepartments fetches departments whose average salary exceeds
// the threshold.
func (c *Client) GetHighSalaryDepartments(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error) {
	var out model.HighSalaryDepartments
	path := fmt.Sprintf("/report/high-salary-departments?threshold=%s", strconv.FormatFloat(threshold, 'f', -1, 64))
	if err := c.get(ctx, cred, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
