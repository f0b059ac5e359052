package hrms

import (
	"context"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// ListEmployees fetches every employee record.
func (c *Client) ListEmployees(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error) {
	var out []model.Employee
	if err := c.get(ctx, cred, "/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEmployee fetches one employee by ID.
func (c *Client) GetEmployee(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error) {
	var out model.Employee
	if err := c.get(ctx, cred, fmt.Sprintf("/employees/%d", id), &out); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}

// CreateEmployee creates a new employee record.
func (c *Client) CreateEmployee(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error) {
	var out model.Employee
	if err := c.postJSON(ctx, cred, "/employees/create", req, &out); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}

// UpdateEmployee replaces an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error) {
	var out model.Employee
	if err := c.putJSON(ctx, cred, fmt.Sprintf("/employees/%d", id), req, &out); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}

// DeactivateEmployee soft-deletes an employee (status flips to INACTIVE).
func (c *Client) DeactivateEmployee(ctx context.Context, cred domainauth.Credential, id int64) error {
	return c.delete(ctx, cred, fmt.Sprintf("/employees/%d", id))
}

// CreateManager creates a manager-role employee.
func (c *Client) CreateManager(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error) {
	var out model.Employee
	if err := c.postJSON(ctx, cred, "/employees/createManager", req, &out); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}
