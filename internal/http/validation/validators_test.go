package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmployeeForm(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{
			Name:        "Alice Smith",
			Email:       "alice@corp.example",
			JoiningDate: "2024-03-01",
			Salary:      "55000",
		})
		assert.Empty(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{Salary: "100"})
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "email")
	})

	t.Run("bad email", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{Name: "A", Email: "not-an-email", Salary: "1"})
		assert.Contains(t, errs, "email")
	})

	t.Run("negative salary", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{Name: "A", Email: "a@b.c", Salary: "-1"})
		assert.Contains(t, errs, "salary")
	})

	t.Run("malformed joining date", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{Name: "A", Email: "a@b.c", Salary: "1", JoiningDate: "01/02/2024"})
		assert.Contains(t, errs, "joining_date")
	})

	t.Run("empty joining date is fine", func(t *testing.T) {
		errs := ValidateEmployeeForm(EmployeeForm{Name: "A", Email: "a@b.c", Salary: "1"})
		assert.NotContains(t, errs, "joining_date")
	})
}

func TestValidateLeaveForm(t *testing.T) {
	valid := LeaveForm{
		LeaveType: "SICK_LEAVE",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "flu",
	}

	t.Run("valid form", func(t *testing.T) {
		assert.Empty(t, ValidateLeaveForm(valid))
	})

	t.Run("unknown leave type", func(t *testing.T) {
		f := valid
		f.LeaveType = "SABBATICAL"
		assert.Contains(t, ValidateLeaveForm(f), "leave_type")
	})

	t.Run("end before start", func(t *testing.T) {
		f := valid
		f.StartDate = "2026-09-10"
		f.EndDate = "2026-09-01"
		errs := ValidateLeaveForm(f)
		assert.Contains(t, errs, "end_date")
	})

	t.Run("same day allowed", func(t *testing.T) {
		f := valid
		f.EndDate = f.StartDate
		assert.Empty(t, ValidateLeaveForm(f))
	})

	t.Run("missing dates", func(t *testing.T) {
		errs := ValidateLeaveForm(LeaveForm{LeaveType: "SICK_LEAVE"})
		assert.Contains(t, errs, "start_date")
		assert.Contains(t, errs, "end_date")
	})
}

func TestValidateDepartmentForm(t *testing.T) {
	assert.Empty(t, ValidateDepartmentForm(DepartmentForm{Name: "Engineering"}))
	assert.Contains(t, ValidateDepartmentForm(DepartmentForm{}), "name")
}
