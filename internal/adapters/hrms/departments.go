package hrms

import (
	"context"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// ListDepartments fetches every department.
func (c *Client) ListDepartments(ctx context.Context, cred domainauth.Credential) ([]model.Department, error) {
	var out []model.Department
	if err := c.get(ctx, cred, "/department/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepartment fetches one department by ID.
func (c *Client) GetDepartment(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error) {
	var out model.Department
	if err := c.get(ctx, cred, fmt.Sprintf("/department/%d", id), &out); err != nil {
		return model.Department{}, err
	}
	return out, nil
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error) {
	var out model.Department
	if err := c.postJSON(ctx, cred, "/department/create", req, &out); err != nil {
		return model.Department{}, err
	}
	return out, nil
}

// ListDepartmentEmployees fetches the employees of one department.
func (c *Client) ListDepartmentEmployees(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error) {
	var out []model.Employee
	if err := c.get(ctx, cred, fmt.Sprintf("/department/%d/employees", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDepartmentEmployee creates an employee directly inside a department.
func (c *Client) CreateDepartmentEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error) {
	var out model.Employee
	if err := c.postJSON(ctx, cred, fmt.Sprintf("/department/%d/employees", id), req, &out); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}

// AssignManager assigns an employee as a department's manager.
func (c *Client) AssignManager(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error {
	return c.putJSON(ctx, cred, fmt.Sprintf("/department/%d/assign/%d", deptID, empID), nil, nil)
}
