package ports

import (
	"context"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// Every backend call runs under the calling session's credential; the
// credential is an explicit parameter so no request can accidentally ride
// on another user's authorization.

// EmployeeAPI covers the backend's employee endpoints.
type EmployeeAPI interface {
	ListEmployees(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error)
	GetEmployee(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error)
	CreateEmployee(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error)
	UpdateEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error)
	// DeactivateEmployee issues the backend's DELETE, which soft-deletes:
	// the employee flips to INACTIVE and the record stays.
	DeactivateEmployee(ctx context.Context, cred domainauth.Credential, id int64) error
	CreateManager(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error)
}

// DepartmentAPI covers the backend's department endpoints.
type DepartmentAPI interface {
	ListDepartments(ctx context.Context, cred domainauth.Credential) ([]model.Department, error)
	GetDepartment(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error)
	CreateDepartment(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error)
	ListDepartmentEmployees(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error)
	CreateDepartmentEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error)
	AssignManager(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error
}

// LeaveAPI covers the backend's leave endpoints.
type LeaveAPI interface {
	ListAllLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListApprovedLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListActiveTodayLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	// ListMyLeaves returns the calling user's own requests.
	ListMyLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	GetLeaveSummary(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error)
	SubmitLeaveRequest(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error)
	ApproveLeave(ctx context.Context, cred domainauth.Credential, id int64) error
	RejectLeave(ctx context.Context, cred domainauth.Credential, id int64) error
}

// PayrollAPI covers the backend's payroll endpoints.
type PayrollAPI interface {
	GetEmployeePayroll(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error)
	GetDepartmentPayroll(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error)
}

// ReportAPI covers the backend's analytics endpoints.
type ReportAPI interface {
	GetReportSummary(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error)
	GetTopEarners(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error)
	GetRecentJoiners(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error)
	GetDepartmentHeadCount(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error)
	GetLeaveTypeStats(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error)
	GetSalaryByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error)
	GetStatusDistribution(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error)
	GetSalaryPartition(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error)
	GetHighSalaryDepartments(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error)
}
