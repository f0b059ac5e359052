package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/domain/nav"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// EmployeesService is a minimal interface for the employees UI.
type EmployeesService interface {
	List(ctx context.Context, cred domainauth.Credential) ([]model.Employee, error)
	Search(ctx context.Context, cred domainauth.Credential, query string, status model.EmployeeStatus) ([]model.Employee, error)
	Get(ctx context.Context, cred domainauth.Credential, id int64) (model.Employee, error)
	Create(ctx context.Context, cred domainauth.Credential, req model.CreateEmployeeRequest) (model.Employee, error)
	Update(ctx context.Context, cred domainauth.Credential, id int64, req model.UpdateEmployeeRequest) (model.Employee, error)
	Deactivate(ctx context.Context, cred domainauth.Credential, id int64) error
	CreateManager(ctx context.Context, cred domainauth.Credential, req model.CreateManagerRequest) (model.Employee, error)
}

// DepartmentsService is a minimal interface for the departments UI.
type DepartmentsService interface {
	List(ctx context.Context, cred domainauth.Credential) ([]model.Department, error)
	Get(ctx context.Context, cred domainauth.Credential, id int64) (model.Department, error)
	Create(ctx context.Context, cred domainauth.Credential, req model.CreateDepartmentRequest) (model.Department, error)
	Employees(ctx context.Context, cred domainauth.Credential, id int64) ([]model.Employee, error)
	AddEmployee(ctx context.Context, cred domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error)
	AssignManager(ctx context.Context, cred domainauth.Credential, deptID, empID int64) error
}

// LeavesService is a minimal interface for the leave management UI.
type LeavesService interface {
	ListAll(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListPending(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListApproved(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListActiveToday(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	ListMine(ctx context.Context, cred domainauth.Credential) ([]model.Leave, error)
	Summary(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.LeaveSummary, error)
	Submit(ctx context.Context, cred domainauth.Credential, req model.CreateLeaveRequest) (model.Leave, error)
	Approve(ctx context.Context, cred domainauth.Credential, id int64) error
	Reject(ctx context.Context, cred domainauth.Credential, id int64) error
}

// PayrollUIService is a minimal interface for the payroll UI.
type PayrollUIService interface {
	ForEmployee(ctx context.Context, cred domainauth.Credential, employeeID int64) (model.Payroll, error)
	ForDepartment(ctx context.Context, cred domainauth.Credential, deptID int64) (model.DepartmentPayroll, error)
}

// ReportsService is a minimal interface for the reports UI.
type ReportsService interface {
	Summary(ctx context.Context, cred domainauth.Credential) (model.ReportSummary, error)
	TopEarners(ctx context.Context, cred domainauth.Credential, limit int) ([]model.Employee, error)
	RecentJoiners(ctx context.Context, cred domainauth.Credential, months int) ([]model.Employee, error)
	HeadCountByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentHeadCount, error)
	LeaveTypeStats(ctx context.Context, cred domainauth.Credential) ([]model.LeaveTypeStats, error)
	SalaryByDepartment(ctx context.Context, cred domainauth.Credential) ([]model.DepartmentSalary, error)
	StatusDistribution(ctx context.Context, cred domainauth.Credential) (model.StatusDistribution, error)
	SalaryPartition(ctx context.Context, cred domainauth.Credential) (model.SalaryPartition, error)
	HighSalaryDepartments(ctx context.Context, cred domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error)
}

// DashboardBuilder assembles the landing page cards for one session.
type DashboardBuilder interface {
	Build(ctx context.Context, sess domainauth.Session) (*service.Dashboard, error)
}

// Compile-time interface assertions to ensure concrete services satisfy
// their UI interfaces.
var (
	_ EmployeesService   = (*service.EmployeeService)(nil)
	_ DepartmentsService = (*service.DepartmentService)(nil)
	_ LeavesService      = (*service.LeaveService)(nil)
	_ PayrollUIService   = (*service.PayrollService)(nil)
	_ ReportsService     = (*service.ReportService)(nil)
	_ DashboardBuilder   = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T           *TemplateRenderer
	Employees   EmployeesService
	Departments DepartmentsService
	Leaves      LeavesService
	Payroll     PayrollUIService
	Reports     ReportsService
	Dashboard   DashboardBuilder
	IsDev       bool
	Logger      *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering. ContentTemplate names
// the page template the layout dispatches to.
type PageMeta struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	ContentTemplate string
}

// basePageData constructs the common page data map with session context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"PageTitle":       meta.PageTitle,
		"CurrentPage":     meta.CurrentPage,
		"ContentTemplate": meta.ContentTemplate,
		"IsAuthenticated": false,
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		data["IsAuthenticated"] = true
		data["Username"] = session.Username
		data["Role"] = string(session.Role)
		data["Nav"] = nav.VisibleItems(session.Role)
	}

	if flash := takeFlash(r); flash != "" {
		data["Flash"] = flash
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders the
// full layout. A fetch failure renders the page with an inline error
// banner instead of a bare 500; the session is never touched.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if _, ok := data["Flash"]; ok {
		clearFlash(w)
	}

	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page data fetch failed",
				"page", spec.Meta.CurrentPage, "error", err)
			data["Error"] = true
			data["ErrorMessage"] = "Some data could not be loaded. Please try again."
		}
	}

	if err := h.T.RenderFull(w, r, data); err != nil {
		h.renderServerError(w, r)
	}
}

// renderServerError serves the standalone error page for failures where
// the normal layout could not be produced.
func (h *UIHandlers) renderServerError(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := h.T.RenderError(w, r, map[string]any{
		"Heading": "Something went wrong",
		"Message": "The page could not be rendered. Please try again.",
	}); err != nil {
		fmt.Fprintln(w, "Internal Server Error")
	}
}

// sessionCredential returns the request session and its credential.
// Handlers behind the guard always have one; the ok guard is for direct
// handler tests.
func sessionCredential(r *http.Request) (*domainauth.Session, domainauth.Credential, bool) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		return nil, "", false
	}
	return sess, sess.Credential, true
}

const flashCookieName = "flash"

// setFlash stores a one-shot notice shown on the next rendered page.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func takeFlash(r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}

func clearFlash(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
