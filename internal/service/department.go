package service

import (
	"context"
	"errors"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// DepartmentServiceOptions groups dependencies for DepartmentService.
type DepartmentServiceOptions struct {
	API ports.DepartmentAPI
}

// DepartmentService orchestrates department operations against the backend.
type DepartmentService struct {
	api ports.DepartmentAPI
}

// NewDepartmentService constructs a new DepartmentService.
func NewDepartmentService(opts DepartmentServiceOptions) *DepartmentService {
	if opts.API == nil {
		panic("DepartmentAPI is required")
	}
	return &DepartmentService{api: opts.API}
}

// List returns all departments.
func (s *DepartmentService) List(ctx context.Context, cred domainauth.Credential) ([]model.Department, error) {
	return s.api.ListDepartments(ctx, cred)
}

// Get retrieves a department by ID.
func (s *DepartmentService) Get(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error) {
	if id <= 0 {
		return model.Department{}, ports.ErrNotFound
	}
	return s.api.GetDepartment(ctx, cred, id)
}

// Create creates a department.
func (s *DepartmentService) Create(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error) {
	if req.Name == "" {
		return model.Department{}, errors.New("department name is required")
	}
	return s.api.CreateDepartment(ctx, cred, req)
}

// Employees lists the employees assigned to a department.
func (s *DepartmentService) Employees(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error) {
	if id <= 0 {
		return nil, ports.ErrNotFound
	}
	return s.api.ListDepartmentEmployees(ctx, cred, id)
}

// AddEmployee creates an employee directly inside a department.
func (s *DepartmentService) AddEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error) {
	if id <= 0 {
		return model.Employee{}, ports.ErrNotFound
	}
	if err := validateEmployeeFields(req.Name, req.Email, req.Salary); err != nil {
		return model.Employee{}, err
	}
	return s.api.CreateDepartmentEmployee(ctx, cred, id, req)
}

// AssignManager assigns an existing employee as a department's manager.
func (s *DepartmentService) AssignManager(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error {
	if deptID <= 0 || empID <= 0 {
		return ports.ErrNotFound
	}
	return s.api.AssignManager(ctx, cred, deptID, empID)
}
