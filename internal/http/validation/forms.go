package validation

import (
	"strings"
	"time"
)

// EmployeeForm carries the raw string inputs of the employee create and
// edit forms.
type EmployeeForm struct {
	Name        string
	Email       string
	JoiningDate string
	Salary      string
}

// ValidateEmployeeForm returns per-field error messages, empty when valid.
func ValidateEmployeeForm(f EmployeeForm) map[string]string {
	return New().
		Validate("name", f.Name, Required("Name", 100)).
		Validate("email", f.Email, Required("Email", 200), Email("Email")).
		Validate("joining_date", f.JoiningDate, ISODate("Joining date")).
		Validate("salary", f.Salary, NonNegativeNumber("Salary")).
		Errors()
}

// DepartmentForm carries the raw inputs of the department create form.
type DepartmentForm struct {
	Name string
}

// ValidateDepartmentForm returns per-field error messages, empty when valid.
func ValidateDepartmentForm(f DepartmentForm) map[string]string {
	return New().
		Validate("name", f.Name, Required("Department name", 100)).
		Errors()
}

var leaveTypes = []string{
	"SICK_LEAVE", "CASUAL_LEAVE", "EARNED_LEAVE", "UNPAID_LEAVE", "MATERNITY_LEAVE",
}

// LeaveForm carries the raw inputs of the leave request form.
type LeaveForm struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

// ValidateLeaveForm returns per-field error messages, empty when valid.
// Beyond field shapes it checks the range: the end date must not precede
// the start date.
func ValidateLeaveForm(f LeaveForm) map[string]string {
	errs := New().
		Validate("leave_type", f.LeaveType, Required("Leave type", 50), OneOf("Leave type", leaveTypes)).
		Validate("start_date", f.StartDate, Required("Start date", 10), ISODate("Start date")).
		Validate("end_date", f.EndDate, Required("End date", 10), ISODate("End date")).
		Validate("reason", f.Reason, Optional("Reason", 500)).
		Errors()

	if _, ok := errs["start_date"]; ok {
		return errs
	}
	if _, ok := errs["end_date"]; ok {
		return errs
	}
	start, err1 := time.Parse("2006-01-02", strings.TrimSpace(f.StartDate))
	end, err2 := time.Parse("2006-01-02", strings.TrimSpace(f.EndDate))
	if err1 == nil && err2 == nil && end.Before(start) {
		errs["end_date"] = "End date cannot be before the start date."
	}
	return errs
}
