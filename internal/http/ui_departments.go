package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/http/validation"
)

// DepartmentsList serves the departments table with a create form.
// GET /departments.
func (h *UIHandlers) DepartmentsList(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Departments - HRMS Admin",
			PageTitle:       "Departments",
			CurrentPage:     "departments",
			ContentTemplate: "page-departments",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			departments, err := h.Departments.List(ctx, cred)
			if err != nil {
				return err
			}
			data["Departments"] = departments
			return nil
		},
	})
}

// DepartmentsCreate handles the create-department form submission.
// POST /departments.
func (h *UIHandlers) DepartmentsCreate(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	if errs := validation.ValidateDepartmentForm(validation.DepartmentForm{Name: name}); len(errs) > 0 {
		setFlash(w, "Department name is required.")
		http.Redirect(w, r, "/departments", http.StatusSeeOther)
		return
	}

	if _, err := h.Departments.Create(r.Context(), cred, model.CreateDepartmentRequest{Name: name}); err != nil {
		h.logger().WarnContext(r.Context(), "create department failed", "error", err)
		setFlash(w, "Could not create the department.")
	} else {
		setFlash(w, "Department created.")
	}
	http.Redirect(w, r, "/departments", http.StatusSeeOther)
}

// DepartmentsShow serves one department with its employee roster.
// GET /departments/{id}.
func (h *UIHandlers) DepartmentsShow(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Department - HRMS Admin",
			PageTitle:       "Department",
			CurrentPage:     "departments",
			ContentTemplate: "page-department-detail",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			dept, err := h.Departments.Get(ctx, cred, id)
			if err != nil {
				return err
			}
			employees, err := h.Departments.Employees(ctx, cred, id)
			if err != nil {
				return err
			}
			data["Department"] = dept
			data["Employees"] = employees
			return nil
		},
	})
}

// DepartmentsAddEmployee creates an employee directly inside a department.
// POST /departments/{id}/employees.
func (h *UIHandlers) DepartmentsAddEmployee(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	deptID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || deptID <= 0 {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	detailPath := "/departments/" + r.PathValue("id")

	form := employeeFormFromRequest(r)
	if errs := validation.ValidateEmployeeForm(validation.EmployeeForm{
		Name:        form.Name,
		Email:       form.Email,
		JoiningDate: form.JoiningDate,
		Salary:      form.Salary,
	}); len(errs) > 0 {
		setFlash(w, errMsgFixBelow)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	req := model.CreateEmployeeRequest{
		Name:        form.Name,
		Email:       form.Email,
		Designation: form.Designation,
		JoiningDate: form.JoiningDate,
		Salary:      form.salaryValue(),
		Status:      model.EmployeeStatusActive,
	}
	if _, err := h.Departments.AddEmployee(r.Context(), cred, deptID, req); err != nil {
		h.logger().WarnContext(r.Context(), "add department employee failed",
			"department_id", deptID, "error", err)
		setFlash(w, "Could not add the employee.")
	} else {
		setFlash(w, "Employee added to the department.")
	}
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}

// DepartmentsAssignManager assigns an existing employee as manager.
// POST /departments/{id}/manager.
func (h *UIHandlers) DepartmentsAssignManager(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	deptID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || deptID <= 0 {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	empID, err := strconv.ParseInt(r.PostFormValue("employee_id"), 10, 64)
	if err != nil || empID <= 0 {
		setFlash(w, "Choose an employee to assign.")
		http.Redirect(w, r, "/departments/"+r.PathValue("id"), http.StatusSeeOther)
		return
	}

	if err := h.Departments.AssignManager(r.Context(), cred, deptID, empID); err != nil {
		h.logger().WarnContext(r.Context(), "assign manager failed",
			"department_id", deptID, "employee_id", empID, "error", err)
		setFlash(w, "Could not assign the manager.")
	} else {
		setFlash(w, "Manager assigned.")
	}
	http.Redirect(w, r, "/departments/"+r.PathValue("id"), http.StatusSeeOther)
}
