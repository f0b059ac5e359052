package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	mockauth "github.com/workforce-hrms/admin-ui/internal/mocks/auth"
	mockhrms "github.com/workforce-hrms/admin-ui/internal/mocks/hrms"
	"github.com/workforce-hrms/admin-ui/internal/ports"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

// routerBackend groups the backend API doubles so tests can stub the
// endpoints they exercise.
type routerBackend struct {
	Employees   *mockhrms.MockEmployeeAPI
	Departments *mockhrms.MockDepartmentAPI
	Leaves      *mockhrms.MockLeaveAPI
}

// newTestRouter wires the full router over mock backend APIs so the tests
// exercise real routing, middleware, and guard behavior end to end.
func newTestRouter(t *testing.T, prober *mockauth.MockCredentialProber) http.Handler {
	t.Helper()
	return newTestRouterWithBackend(t, prober, routerBackend{})
}

func newTestRouterWithBackend(t *testing.T, prober *mockauth.MockCredentialProber, backend routerBackend) http.Handler {
	t.Helper()
	SkipIfNoTemplates(t)

	auth := service.NewAuthService(service.AuthServiceOptions{
		Prober:   prober,
		Sessions: mockauth.NewMemorySessionStore(),
		Config: service.AuthConfig{
			AdminUsername:          "admin",
			CEOUsername:            "ceo",
			PayrollProbeEmployeeID: 1,
			SessionTTL:             time.Hour,
		},
	})

	filter := service.NewListFilterService(service.ListFilterServiceOptions{})
	employees := backend.Employees
	if employees == nil {
		employees = &mockhrms.MockEmployeeAPI{}
	}
	departments := backend.Departments
	if departments == nil {
		departments = &mockhrms.MockDepartmentAPI{}
	}
	leaves := backend.Leaves
	if leaves == nil {
		leaves = &mockhrms.MockLeaveAPI{}
	}

	return NewRouter(RouterServices{
		Auth:        auth,
		Employees:   service.NewEmployeeService(service.EmployeeServiceOptions{API: employees, Filter: filter}),
		Departments: service.NewDepartmentService(service.DepartmentServiceOptions{API: departments}),
		Leaves:      service.NewLeaveService(service.LeaveServiceOptions{API: leaves}),
		Payroll:     service.NewPayrollService(service.PayrollServiceOptions{API: &mockhrms.MockPayrollAPI{}}),
		Reports:     service.NewReportService(service.ReportServiceOptions{API: &mockhrms.MockReportAPI{}}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Employees:   employees,
			Departments: departments,
			Leaves:      leaves,
			Logger:      discardLogger(),
		}),
		Logger:     discardLogger(),
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
}

// loginAs runs the login flow against the router and returns the session cookie.
func loginAs(t *testing.T, router http.Handler, username string) *http.Cookie {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", "pw")
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("login did not set a session cookie")
	return nil
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_AnonymousDashboardRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2F", rec.Header().Get("Location"))
}

func TestRouter_LoginFlowAdminSeesEmployees(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})
	cookie := loginAs(t, router, "admin")

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRouter_EmployeeBlockedFromPayroll(t *testing.T) {
	// Default prober denies the payroll probe, so a plain username lands
	// in the employee role.
	router := newTestRouter(t, &mockauth.MockCredentialProber{})
	cookie := loginAs(t, router, "casey")

	req := httptest.NewRequest(http.MethodGet, "/payroll", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultPath, rec.Header().Get("Location"))
}

func TestRouter_ManagerSeesLeaveManagement(t *testing.T) {
	prober := &mockauth.MockCredentialProber{
		ProbeFunc: func(_ context.Context, _ domainauth.Credential, _ int) error {
			return nil
		},
	}
	router := newTestRouter(t, prober)
	cookie := loginAs(t, router, "morgan")

	req := httptest.NewRequest(http.MethodGet, "/leaves", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PrivilegedBlockedFromMyLeaves(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})
	cookie := loginAs(t, router, "admin")

	req := httptest.NewRequest(http.MethodGet, "/my-leaves", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultPath, rec.Header().Get("Location"))
}

func TestRouter_UnknownPathRedirects(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})

	// Anonymous: unknown paths go to login.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login"))

	// Authenticated: unknown paths go to the dashboard.
	cookie := loginAs(t, router, "admin")
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultPath, rec.Header().Get("Location"))
}

func TestRouter_LeavesSummaryLookup(t *testing.T) {
	leaves := &mockhrms.MockLeaveAPI{
		GetLeaveSummaryFunc: func(_ context.Context, _ domainauth.Credential, employeeID int64) (model.LeaveSummary, error) {
			if employeeID != 7 {
				return model.LeaveSummary{}, ports.ErrNotFound
			}
			return model.LeaveSummary{
				EmployeeID:     7,
				TotalLeaves:    4,
				TotalLeaveDays: 9,
				ApprovedLeaves: 2,
				PendingLeaves:  1,
				RejectedLeaves: 1,
			}, nil
		},
	}
	router := newTestRouterWithBackend(t, &mockauth.MockCredentialProber{}, routerBackend{Leaves: leaves})
	cookie := loginAs(t, router, "admin")

	req := httptest.NewRequest(http.MethodGet, "/leaves?summary_id=7", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Employee Leave Summary")
	assert.Contains(t, body, "<strong>2</strong> approved")
	assert.Contains(t, body, "<strong>9</strong> days")

	// An unknown employee shows a not-found notice, not an error banner.
	req = httptest.NewRequest(http.MethodGet, "/leaves?summary_id=99", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No leave records found for employee #99.")
}

func TestRouter_DepartmentAddEmployee(t *testing.T) {
	var (
		gotDept int64
		gotReq  model.CreateEmployeeRequest
	)
	departments := &mockhrms.MockDepartmentAPI{
		CreateDepartmentEmployeeFunc: func(_ context.Context, _ domainauth.Credential, id int64, req model.CreateEmployeeRequest) (model.Employee, error) {
			gotDept = id
			gotReq = req
			return model.Employee{EmployeeID: 42, Name: req.Name}, nil
		},
	}
	router := newTestRouterWithBackend(t, &mockauth.MockCredentialProber{}, routerBackend{Departments: departments})
	cookie := loginAs(t, router, "admin")

	form := url.Values{}
	form.Set("name", "Dana Flores")
	form.Set("email", "dana@example.com")
	form.Set("designation", "Engineer")
	form.Set("joining_date", "2026-02-01")
	form.Set("salary", "52000")
	req := httptest.NewRequest(http.MethodPost, "/departments/3/employees", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/departments/3", rec.Header().Get("Location"))
	assert.Equal(t, int64(3), gotDept)
	assert.Equal(t, "Dana Flores", gotReq.Name)
	assert.Equal(t, model.EmployeeStatusActive, gotReq.Status)
}

func TestRouter_DepartmentAddEmployee_InvalidFormSkipsBackend(t *testing.T) {
	called := false
	departments := &mockhrms.MockDepartmentAPI{
		CreateDepartmentEmployeeFunc: func(context.Context, domainauth.Credential, int64, model.CreateEmployeeRequest) (model.Employee, error) {
			called = true
			return model.Employee{}, nil
		},
	}
	router := newTestRouterWithBackend(t, &mockauth.MockCredentialProber{}, routerBackend{Departments: departments})
	cookie := loginAs(t, router, "admin")

	form := url.Values{}
	form.Set("email", "dana@example.com")
	req := httptest.NewRequest(http.MethodPost, "/departments/3/employees", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/departments/3", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestRouter_InvalidCredentialsStayOnLogin(t *testing.T) {
	prober := &mockauth.MockCredentialProber{
		VerifyFunc: func(_ context.Context, _ domainauth.Credential) error {
			return ports.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, prober)

	form := url.Values{}
	form.Set("username", "jordan")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password.")
}

func TestRouter_LogoutEndsSession(t *testing.T) {
	router := newTestRouter(t, &mockauth.MockCredentialProber{})
	cookie := loginAs(t, router, "admin")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// The old cookie no longer resolves to a session.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login"))
}
