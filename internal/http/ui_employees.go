package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/http/validation"
)

// EmployeesList serves the employees table with optional search filtering.
// GET /employees?q=<text>&status=<ACTIVE|INACTIVE>.
func (h *UIHandlers) EmployeesList(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	query := r.URL.Query().Get("q")
	status := model.EmployeeStatus(r.URL.Query().Get("status"))
	if status != "" && status != model.EmployeeStatusActive && status != model.EmployeeStatusInactive {
		status = ""
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Employees - HRMS Admin",
			PageTitle:       "Employees",
			CurrentPage:     "employees",
			ContentTemplate: "page-employees",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Query"] = query
			data["Status"] = string(status)

			employees, err := h.Employees.Search(ctx, cred, query, status)
			if err != nil {
				return err
			}
			data["Employees"] = employees
			return nil
		},
	})
}

// EmployeesNew serves the create-employee form.
// GET /employees/new.
func (h *UIHandlers) EmployeesNew(w http.ResponseWriter, r *http.Request) {
	h.renderEmployeeForm(w, r, employeeFormState{Mode: "create"})
}

// EmployeesCreate handles the create-employee form submission.
// POST /employees.
func (h *UIHandlers) EmployeesCreate(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := employeeFormFromRequest(r)
	errs := validation.ValidateEmployeeForm(validation.EmployeeForm{
		Name:        form.Name,
		Email:       form.Email,
		JoiningDate: form.JoiningDate,
		Salary:      form.Salary,
	})
	if len(errs) > 0 {
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "create", Form: form, Errors: errs, Error: errMsgFixBelow,
		})
		return
	}

	req := model.CreateEmployeeRequest{
		Name:         form.Name,
		Email:        form.Email,
		Designation:  form.Designation,
		JoiningDate:  form.JoiningDate,
		Salary:       form.salaryValue(),
		Status:       model.EmployeeStatusActive,
		DepartmentID: form.departmentIDValue(),
	}
	if _, err := h.Employees.Create(r.Context(), cred, req); err != nil {
		h.logger().WarnContext(r.Context(), "create employee failed", "error", err)
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "create", Form: form, Error: "Could not create the employee. Please try again.",
		})
		return
	}

	setFlash(w, "Employee created.")
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// EmployeesEdit serves the edit form pre-filled from the backend record.
// GET /employees/{id}/edit.
func (h *UIHandlers) EmployeesEdit(w http.ResponseWriter, r *http.Request) {
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

	emp, err := h.Employees.Get(r.Context(), cred, id)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	form := employeeFormValues{
		Name:        emp.Name,
		Email:       emp.Email,
		Designation: emp.Designation,
		JoiningDate: emp.JoiningDate,
		Salary:      strconv.FormatFloat(emp.Salary, 'f', -1, 64),
	}
	if emp.Department != nil {
		form.DepartmentID = strconv.FormatInt(emp.Department.DepartmentID, 10)
	}
	h.renderEmployeeForm(w, r, employeeFormState{Mode: "edit", ID: id, Form: form})
}

// EmployeesUpdate handles the edit form submission.
// POST /employees/{id}.
func (h *UIHandlers) EmployeesUpdate(w http.ResponseWriter, r *http.Request) {
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
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := employeeFormFromRequest(r)
	errs := validation.ValidateEmployeeForm(validation.EmployeeForm{
		Name:        form.Name,
		Email:       form.Email,
		JoiningDate: form.JoiningDate,
		Salary:      form.Salary,
	})
	if len(errs) > 0 {
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "edit", ID: id, Form: form, Errors: errs, Error: errMsgFixBelow,
		})
		return
	}

	req := model.UpdateEmployeeRequest{
		Name:         form.Name,
		Email:        form.Email,
		Designation:  form.Designation,
		JoiningDate:  form.JoiningDate,
		Salary:       form.salaryValue(),
		Status:       model.EmployeeStatus(r.PostFormValue("status")),
		DepartmentID: form.departmentIDValue(),
	}
	if req.Status != model.EmployeeStatusInactive {
		req.Status = model.EmployeeStatusActive
	}
	if _, err := h.Employees.Update(r.Context(), cred, id, req); err != nil {
		h.logger().WarnContext(r.Context(), "update employee failed", "employee_id", id, "error", err)
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "edit", ID: id, Form: form, Error: "Could not save the changes. Please try again.",
		})
		return
	}

	setFlash(w, "Employee updated.")
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// EmployeesDeactivate soft-deletes an employee.
// POST /employees/{id}/deactivate.
func (h *UIHandlers) EmployeesDeactivate(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Employees.Deactivate(r.Context(), cred, id); err != nil {
		h.logger().WarnContext(r.Context(), "deactivate employee failed", "employee_id", id, "error", err)
		setFlash(w, "Could not deactivate the employee.")
	} else {
		setFlash(w, "Employee deactivated.")
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// ManagersCreate handles the create-manager form submission.
// POST /employees/managers.
func (h *UIHandlers) ManagersCreate(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := employeeFormFromRequest(r)
	errs := validation.ValidateEmployeeForm(validation.EmployeeForm{
		Name:        form.Name,
		Email:       form.Email,
		JoiningDate: form.JoiningDate,
		Salary:      form.Salary,
	})
	if len(errs) > 0 {
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "manager", Form: form, Errors: errs, Error: errMsgFixBelow,
		})
		return
	}

	req := model.CreateManagerRequest{
		Name:        form.Name,
		Email:       form.Email,
		Designation: "Manager",
		JoiningDate: form.JoiningDate,
		Salary:      form.salaryValue(),
		Status:      model.EmployeeStatusActive,
	}
	if _, err := h.Employees.CreateManager(r.Context(), cred, req); err != nil {
		h.logger().WarnContext(r.Context(), "create manager failed", "error", err)
		h.renderEmployeeForm(w, r, employeeFormState{
			Mode: "manager", Form: form, Error: "Could not create the manager. Please try again.",
		})
		return
	}

	setFlash(w, "Manager created.")
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// ManagersNew serves the create-manager form.
// GET /employees/managers/new.
func (h *UIHandlers) ManagersNew(w http.ResponseWriter, r *http.Request) {
	h.renderEmployeeForm(w, r, employeeFormState{Mode: "manager"})
}

type employeeFormValues struct {
	Name         string
	Email        string
	Designation  string
	JoiningDate  string
	Salary       string
	DepartmentID string
}

func (f employeeFormValues) salaryValue() float64 {
	v, _ := strconv.ParseFloat(f.Salary, 64)
	return v
}

func (f employeeFormValues) departmentIDValue() int64 {
	v, _ := strconv.ParseInt(f.DepartmentID, 10, 64)
	return v
}

func employeeFormFromRequest(r *http.Request) employeeFormValues {
	return employeeFormValues{
		Name:         r.PostFormValue("name"),
		Email:        r.PostFormValue("email"),
		Designation:  r.PostFormValue("designation"),
		JoiningDate:  r.PostFormValue("joining_date"),
		Salary:       r.PostFormValue("salary"),
		DepartmentID: r.PostFormValue("department_id"),
	}
}

type employeeFormState struct {
	Mode   string // create | edit | manager
	ID     int64
	Form   employeeFormValues
	Errors map[string]string
	Error  string
}

func (h *UIHandlers) renderEmployeeForm(w http.ResponseWriter, r *http.Request, state employeeFormState) {
	title := "New Employee"
	switch state.Mode {
	case "edit":
		title = "Edit Employee"
	case "manager":
		title = "New Manager"
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           title + " - HRMS Admin",
			PageTitle:       title,
			CurrentPage:     "employees",
			ContentTemplate: "page-employee-form",
		},
		Fetch: func(_ context.Context, data map[string]any) error {
			data["Mode"] = state.Mode
			data["ID"] = state.ID
			data["Form"] = state.Form
			if state.Errors == nil {
				data["Errors"] = map[string]string{}
			} else {
				data["Errors"] = state.Errors
			}
			if state.Error != "" {
				data["Error"] = true
				data["ErrorMessage"] = state.Error
			}
			return nil
		},
	})
}
