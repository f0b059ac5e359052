package hrms

// Package hrms contains hand-written test doubles for the backend API
// ports. Each method delegates to its Func field when set and returns the
// zero value otherwise, so tests only stub what they use.

import (
	"context"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

var (
	_ ports.EmployeeAPI   = (*MockEmployeeAPI)(nil)
	_ ports.DepartmentAPI = (*MockDepartmentAPI)(nil)
	_ ports.LeaveAPI      = (*MockLeaveAPI)(nil)
	_ ports.PayrollAPI    = (*MockPayrollAPI)(nil)
	_ ports.ReportAPI     = (*MockReportAPI)(nil)
)

// MockEmployeeAPI is a test double for ports.EmployeeAPI.
type MockEmployeeAPI struct {
	ListEmployeesFunc      func(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error)
	GetEmployeeFunc        func(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error)
	CreateEmployeeFunc     func(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error)
	UpdateEmployeeFunc     func(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error)
	DeactivateEmployeeFunc func(ctx context.Context, cred domainauth.Credential, id int64) error
	CreateManagerFunc      func(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error)
}

func (m *MockEmployeeAPI) ListEmployees(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error) {
	if m.ListEmployeesFunc != nil {
		return m.ListEmployeesFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockEmployeeAPI) GetEmployee(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error) {
	if m.GetEmployeeFunc != nil {
		return m.GetEmployeeFunc(ctx, cred, id)
	}
	return model.Employee{}, nil
}

func (m *MockEmployeeAPI) CreateEmployee(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error) {
	if m.CreateEmployeeFunc != nil {
		return m.CreateEmployeeFunc(ctx, cred, req)
	}
	return model.Employee{}, nil
}

func (m *MockEmployeeAPI) UpdateEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error) {
	if m.UpdateEmployeeFunc != nil {
		return m.UpdateEmployeeFunc(ctx, cred, id, req)
	}
	return model.Employee{}, nil
}

func (m *MockEmployeeAPI) DeactivateEmployee(ctx context.Context, cred domainauth.Credential, id int64) error {
	if m.DeactivateEmployeeFunc != nil {
		return m.DeactivateEmployeeFunc(ctx, cred, id)
	}
	return nil
}

func (m *MockEmployeeAPI) CreateManager(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error) {
	if m.CreateManagerFunc != nil {
		return m.CreateManagerFunc(ctx, cred, req)
	}
	return model.Employee{}, nil
}

// MockDepartmentAPI is a test double for ports.DepartmentAPI.
type MockDepartmentAPI struct {
	ListDepartmentsFunc          func(ctx context.Context, cred domainauth.Credential) ([]model.Department, error)
	GetDepartmentFunc            func(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error)
	CreateDepartmentFunc         func(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error)
	ListDepartmentEmployeesFunc  func(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error)
	CreateDepartmentEmployeeFunc func(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error)
	AssignManagerFunc            func(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error
}

func (m *MockDepartmentAPI) ListDepartments(ctx context.Context, cred domainauth.Credential) ([]model.Department, error) {
	if m.ListDepartmentsFunc != nil {
		return m.ListDepartmentsFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockDepartmentAPI) GetDepartment(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error) {
	if m.GetDepartmentFunc != nil {
		return m.GetDepartmentFunc(ctx, cred, id)
	}
	return model.Department{}, nil
}

func (m *MockDepartmentAPI) CreateDepartment(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error) {
	if m.CreateDepartmentFunc != nil {
		return m.CreateDepartmentFunc(ctx, cred, req)
	}
	return model.Department{}, nil
}

func (m *MockDepartmentAPI) ListDepartmentEmployees(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error) {
	if m.ListDepartmentEmployeesFunc != nil {
		return m.ListDepartmentEmployeesFunc(ctx, cred, id)
	}
	return nil, nil
}

func (m *MockDepartmentAPI) CreateDepartmentEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error) {
	if m.CreateDepartmentEmployeeFunc != nil {
		return m.CreateDepartmentEmployeeFunc(ctx, cred, id, req)
	}
	return model.Employee{}, nil
}

func (m *MockDepartmentAPI) AssignManager(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error {
	if m.AssignManagerFunc != nil {
		return m.AssignManagerFunc(ctx, cred, deptID, empID)
	}
	return nil
}

// MockLeaveAPI is a test double for ports.LeaveAPI.
type MockLeaveAPI struct {
	ListAllLeavesFunc         func(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListApprovedLeavesFunc    func(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListActiveTodayLeavesFunc func(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListMyLeavesFunc          func(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	GetLeaveSummaryFunc       func(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error)
	SubmitLeaveRequestFunc    func(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error)
	ApproveLeaveFunc          func(ctx context.Context, cred domainauth.Credential, id int64) error
	RejectLeaveFunc           func(ctx context.Context, cred domainauth.Credential, id int64) error
}

func (m *MockLeaveAPI) ListAllLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	if m.ListAllLeavesFunc != nil {
		return m.ListAllLeavesFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockLeaveAPI) ListApprovedLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	if m.ListApprovedLeavesFunc != nil {
		return m.ListApprovedLeavesFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockLeaveAPI) ListActiveTodayLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	if m.ListActiveTodayLeavesFunc != nil {
		return m.ListActiveTodayLeavesFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockLeaveAPI) ListMyLeaves(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error) {
	if m.ListMyLeavesFunc != nil {
		return m.ListMyLeavesFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockLeaveAPI) GetLeaveSummary(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error) {
	if m.GetLeaveSummaryFunc != nil {
		return m.GetLeaveSummaryFunc(ctx, cred, employeeID)
	}
	return model.LeaveSummary{}, nil
}

func (m *MockLeaveAPI) SubmitLeaveRequest(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error) {
	if m.SubmitLeaveRequestFunc != nil {
		return m.SubmitLeaveRequestFunc(ctx, cred, req)
	}
	return model.Leave{}, nil
}

func (m *MockLeaveAPI) ApproveLeave(ctx context.Context, cred domainauth.Credential, id int64) error {
	if m.ApproveLeaveFunc != nil {
		return m.ApproveLeaveFunc(ctx, cred, id)
	}
	return nil
}

func (m *MockLeaveAPI) RejectLeave(ctx context.Context, cred domainauth.Credential, id int64) error {
	if m.RejectLeaveFunc != nil {
		return m.RejectLeaveFunc(ctx, cred, id)
	}
	return nil
}

// MockPayrollAPI is a test double for ports.PayrollAPI.
type MockPayrollAPI struct {
	GetEmployeePayrollFunc   func(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error)
	GetDepartmentPayrollFunc func(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error)
}

func (m *MockPayrollAPI) GetEmployeePayroll(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error) {
	if m.GetEmployeePayrollFunc != nil {
		return m.GetEmployeePayrollFunc(ctx, cred, employeeID)
	}
	return model.Payroll{}, nil
}

func (m *MockPayrollAPI) GetDepartmentPayroll(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error) {
	if m.GetDepartmentPayrollFunc != nil {
		return m.GetDepartmentPayrollFunc(ctx, cred, deptID)
	}
	return model.DepartmentPayroll{}, nil
}

// MockReportAPI is a test double for ports.ReportAPI.
type MockReportAPI struct {
	GetReportSummaryFunc         func(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error)
	GetTopEarnersFunc            func(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error)
	GetRecentJoinersFunc         func(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error)
	GetDepartmentHeadCountFunc   func(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error)
	GetLeaveTypeStatsFunc        func(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error)
	GetSalaryByDepartmentFunc    func(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error)
	GetStatusDistributionFunc    func(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error)
	GetSalaryPartitionFunc       func(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error)
	GetHighSalaryDepartmentsFunc func(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error)
}

func (m *MockReportAPI) GetReportSummary(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error) {
	if m.GetReportSummaryFunc != nil {
		return m.GetReportSummaryFunc(ctx, cred)
	}
	return model.ReportSummary{}, nil
}

func (m *MockReportAPI) GetTopEarners(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error) {
	if m.GetTopEarnersFunc != nil {
		return m.GetTopEarnersFunc(ctx, cred, limit)
	}
	return nil, nil
}

func (m *MockReportAPI) GetRecentJoiners(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error) {
	if m.GetRecentJoinersFunc != nil {
		return m.GetRecentJoinersFunc(ctx, cred, months)
	}
	return nil, nil
}

func (m *MockReportAPI) GetDepartmentHeadCount(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error) {
	if m.GetDepartmentHeadCountFunc != nil {
		return m.GetDepartmentHeadCountFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockReportAPI) GetLeaveTypeStats(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error) {
	if m.GetLeaveTypeStatsFunc != nil {
		return m.GetLeaveTypeStatsFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockReportAPI) GetSalaryByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error) {
	if m.GetSalaryByDepartmentFunc != nil {
		return m.GetSalaryByDepartmentFunc(ctx, cred)
	}
	return nil, nil
}

func (m *MockReportAPI) GetStatusDistribution(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error) {
	if m.GetStatusDistributionFunc != nil {
		return m.GetStatusDistributionFunc(ctx, cred)
	}
	return model.StatusDistribution{}, nil
}

func (m *MockReportAPI) GetSalaryPartition(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error) {
	if m.GetSalaryPartitionFunc != nil {
		return m.GetSalaryPartitionFunc(ctx, cred)
	}
	return model.SalaryPartition{}, nil
}

func (m *MockReportAPI) GetHighSalaryDepartments(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error) {
	if m.GetHighSalaryDepartmentsFunc != nil {
		return m.GetHighSalaryDepartmentsFunc(ctx, cred, threshold)
	}
	return model.HighSalaryDepartments{}, nil
}
