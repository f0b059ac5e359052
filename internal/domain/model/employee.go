package model

// EmployeeStatus is the lifecycle state of an employee record.
// Deleting an employee is a soft delete: the backend flips the status to
// INACTIVE and keeps the row.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// Employee mirrors the backend's employee resource.
type Employee struct {
	EmployeeID  int64          `json:"employeeId"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Designation string         `json:"designation,omitempty"`
	JoiningDate string         `json:"joiningDate,omitempty"` // ISO date (yyyy-mm-dd)
	Salary      float64        `json:"salary"`
	Status      EmployeeStatus `json:"status"`
	// Department is write-only on this wire: the backend omits the
	// department from employee JSON to break the serialization cycle, so
	// responses never populate it.
	Department *DepartmentRef `json:"department,omitempty"`
}

// IsActive reports whether the employee currently counts toward active
// headcount.
func (e Employee) IsActive() bool { return e.Status == EmployeeStatusActive }

// CreateEmployeeRequest is the typed payload for POST /employees/create.
// Fields are explicit rather than a free-form map so validation happens
// before the backend sees the request.
type CreateEmployeeRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Designation  string         `json:"designation,omitempty"`
	JoiningDate  string         `json:"joiningDate,omitempty"`
	Salary       float64        `json:"salary"`
	Status       EmployeeStatus `json:"status"`
	DepartmentID int64          `json:"department_id,omitempty"`
}

// UpdateEmployeeRequest is the typed payload for PUT /employees/{id}.
type UpdateEmployeeRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Designation  string         `json:"designation,omitempty"`
	JoiningDate  string         `json:"joiningDate,omitempty"`
	Salary       float64        `json:"salary"`
	Status       EmployeeStatus `json:"status"`
	DepartmentID int64          `json:"department_id,omitempty"`
}

// CreateManagerRequest is the typed payload for POST /employees/createManager.
// The backend fixes the designation to Manager.
type CreateManagerRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Designation string         `json:"designation"`
	JoiningDate string         `json:"joiningDate,omitempty"`
	Salary      float64        `json:"salary"`
	Status      EmployeeStatus `json:"status"`
}
