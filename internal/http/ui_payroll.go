package httpx

import (
	"context"
	"net/http"
	"strconv"
)

// PayrollPage serves the payroll lookup page. Query parameters select an
// employee breakdown, a department aggregate, or both.
// GET /payroll?employee_id=<id>&department_id=<id>.
func (h *UIHandlers) PayrollPage(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	employeeID, _ := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	departmentID, _ := strconv.ParseInt(r.URL.Query().Get("department_id"), 10, 64)

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Payroll - HRMS Admin",
			PageTitle:       "Payroll",
			CurrentPage:     "payroll",
			ContentTemplate: "page-payroll",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			// The selectors need the full lists either way.
			employees, err := h.Employees.List(ctx, cred)
			if err != nil {
				return err
			}
			departments, err := h.Departments.List(ctx, cred)
			if err != nil {
				return err
			}
			data["Employees"] = employees
			data["Departments"] = departments

			if employeeID > 0 {
				payroll, err := h.Payroll.ForEmployee(ctx, cred, employeeID)
				if err != nil {
					return err
				}
				data["EmployeePayroll"] = payroll
				data["SelectedEmployeeID"] = employeeID
			}
			if departmentID > 0 {
				payroll, err := h.Payroll.ForDepartment(ctx, cred, departmentID)
				if err != nil {
					return err
				}
				data["DepartmentPayroll"] = payroll
				data["SelectedDepartmentID"] = departmentID
			}
			return nil
		},
	})
}
