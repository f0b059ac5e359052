package service

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// EmployeeServiceOptions groups dependencies for EmployeeService.
type EmployeeServiceOptions struct {
	API    ports.EmployeeAPI
	Filter *ListFilterService
}

// EmployeeService orchestrates employee CRUD against the backend. All
// reads and writes run under the calling session's credential, so the
// backend enforces its own authorization on top of the dashboard's.
type EmployeeService struct {
	api    ports.EmployeeAPI
	filter *ListFilterService
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(opts EmployeeServiceOptions) *EmployeeService {
	if opts.API == nil {
		panic("EmployeeAPI is required")
	}
	return &EmployeeService{api: opts.API, filter: opts.Filter}
}

// List returns all employees visible to the credential.
func (s *EmployeeService) List(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error) {
	return s.api.ListEmployees(ctx, cred)
}

// Search returns employees matching a free-text query and an optional
// status filter. Filtering happens here, not on the backend, which has no
// search endpoint.
func (s *EmployeeService) Search(ctx context.Context, cred domainauth.Credential, query string, status model.EmployeeStatus) ([]model.Employee, error) {
	employees, err := s.api.ListEmployees(ctx, cred)
	if err != nil {
		return nil, err
	}
	if s.filter == nil || (query == "" && status == "") {
		return employees, nil
	}
	filtered, err := s.filter.FilterEmployees(employees, query, status)
	if err != nil {
		return nil, fmt.Errorf("filter employees: %w", err)
	}
	return filtered, nil
}

// Get retrieves a single employee by ID.
func (s *EmployeeService) Get(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error) {
	if id <= 0 {
		return model.Employee{}, ports.ErrNotFound
	}
	return s.api.GetEmployee(ctx, cred, id)
}

// Create creates an employee after validating the request.
func (s *EmployeeService) Create(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error) {
	if err := validateEmployeeFields(req.Name, req.Email, req.Salary); err != nil {
		return model.Employee{}, err
	}
	return s.api.CreateEmployee(ctx, cred, req)
}

// Update updates an employee's details.
func (s *EmployeeService) Update(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error) {
	if id <= 0 {
		return model.Employee{}, ports.ErrNotFound
	}
	if err := validateEmployeeFields(req.Name, req.Email, req.Salary); err != nil {
		return model.Employee{}, err
	}
	return s.api.UpdateEmployee(ctx, cred, id, req)
}

// Deactivate soft-deletes an employee. The backend flips the status to
// INACTIVE and keeps the record.
func (s *EmployeeService) Deactivate(ctx context.Context, cred domainauth.Credential, id int64) error {
	if id <= 0 {
		return ports.ErrNotFound
	}
	return s.api.DeactivateEmployee(ctx, cred, id)
}

// CreateManager creates an employee with manager-level backend access.
func (s *EmployeeService) CreateManager(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error) {
	if err := validateEmployeeFields(req.Name, req.Email, req.Salary); err != nil {
		return model.Employee{}, err
	}
	return s.api.CreateManager(ctx, cred, req)
}

func validateEmployeeFields(name, email string, salary float64) error {
	if name == "" {
		return errors.New("employee name is required")
	}
	if email == "" {
		return errors.New("employee email is required")
	}
	if salary < 0 {
		return errors.New("salary cannot be negative")
	}
	return nil
}
