package hrms

import (
	"context"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// GetEmployeePayroll fetches the server-computed salary breakdown for one
// employee.
func (c *Client) GetEmployeePayroll(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error) {
	var out model.Payroll
	if err := c.get(ctx, cred, fmt.Sprintf("/payroll/%d", employeeID), &out); err != nil {
		return model.Payroll{}, err
	}
	return out, nil
}

// GetDepartmentPayroll fetches the payroll aggregate for one department.
func (c *Client) GetDepartmentPayroll(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error) {
	var out model.DepartmentPayroll
	if err := c.get(ctx, cred, fmt.Sprintf("/payroll/department/%d", deptID), &out); err != nil {
		return model.DepartmentPayroll{}, err
	}
	return out, nil
}
