package service

import (
	"context"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// PayrollServiceOptions groups dependencies for PayrollService.
type PayrollServiceOptions struct {
	API ports.PayrollAPI
}

// PayrollService exposes the backend's payroll breakdowns.
type PayrollService struct {
	api ports.PayrollAPI
}

// NewPayrollService constructs a new PayrollService.
func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	if opts.API == nil {
		panic("PayrollAPI is required")
	}
	return &PayrollService{api: opts.API}
}

// ForEmployee returns one employee's salary breakdown.
func (s *PayrollService) ForEmployee(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error) {
	if employeeID <= 0 {
		return model.Payroll{}, ports.ErrNotFound
	}
	return s.api.GetEmployeePayroll(ctx, cred, employeeID)
}

// ForDepartment returns a department's aggregated payroll.
func (s *PayrollService) ForDepartment(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error) {
	if deptID <= 0 {
		return model.DepartmentPayroll{}, ports.ErrNotFound
	}
	return s.api.GetDepartmentPayroll(ctx, cred, deptID)
}
