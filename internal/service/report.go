package service

import (
	"context"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// ReportServiceOptions groups dependencies for ReportService.
type ReportServiceOptions struct {
	API ports.ReportAPI
}

// ReportService exposes the backend's analytics endpoints with sane
// bounds on caller-supplied query parameters.
type ReportService struct {
	api ports.ReportAPI
}

const (
	defaultTopEarnerLimit    = 5
	defaultRecentJoinMonths  = 6
	maxTopEarnerLimit        = 100
	maxRecentJoinMonths      = 120
	defaultSalaryThresholdRs = 50000
)

// NewReportService constructs a new ReportService.
func NewReportService(opts ReportServiceOptions) *ReportService {
	if opts.API == nil {
		panic("ReportAPI is required")
	}
	return &ReportService{api: opts.API}
}

// Summary returns the organization-wide report summary.
func (s *ReportService) Summary(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error) {
	return s.api.GetReportSummary(ctx, cred)
}

// TopEarners returns the highest-paid employees, clamping the limit.
func (s *ReportService) TopEarners(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error) {
	if limit <= 0 {
		limit = defaultTopEarnerLimit
	}
	if limit > maxTopEarnerLimit {
		limit = maxTopEarnerLimit
	}
	return s.api.GetTopEarners(ctx, cred, limit)
}

// RecentJoiners returns employees who joined within the given months.
func (s *ReportService) RecentJoiners(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error) {
	if months <= 0 {
		months = defaultRecentJoinMonths
	}
	if months > maxRecentJoinMonths {
		months = maxRecentJoinMonths
	}
	return s.api.GetRecentJoiners(ctx, cred, months)
}

// HeadCountByDepartment returns per-department headcounts.
func (s *ReportService) HeadCountByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error) {
	return s.api.GetDepartmentHeadCount(ctx, cred)
}

// LeaveTypeStats returns usage counters per leave type.
func (s *ReportService) LeaveTypeStats(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error) {
	return s.api.GetLeaveTypeStats(ctx, cred)
}

// SalaryByDepartment returns per-department salary aggregates.
func (s *ReportService) SalaryByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error) {
	return s.api.GetSalaryByDepartment(ctx, cred)
}

// StatusDistribution returns the active/inactive employee split.
func (s *ReportService) StatusDistribution(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error) {
	return s.api.GetStatusDistribution(ctx, cred)
}

// SalaryPartition splits employees around the average salary.
func (s *ReportService) SalaryPartition(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error) {
	return s.api.GetSalaryPartition(ctx, cred)
}

// HighSalaryDepartments returns departments whose average salary exceeds
// the threshold.
func (s *ReportService) HighSalaryDepartments(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error) {
	if threshold <= 0 {
		threshold = defaultSalaryThresholdRs
	}
	return s.api.GetHighSalaryDepartments(ctx, cred, threshold)
}
