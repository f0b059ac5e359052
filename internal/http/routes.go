package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	hrmsadmin "github.com/workforce-hrms/admin-ui"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Employees   *service.EmployeeService
	Departments *service.DepartmentService
	Leaves      *service.LeaveService
	Payroll     *service.PayrollService
	Reports     *service.ReportService
	Dashboard   *service.DashboardService

	CookieDomain string
	IsDev        bool         // Development mode flag for disk-backed assets
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
	TemplateFS   fs.FS        // Overrides template loading when set (tests)
}

// NewRouter creates and configures the HTTP router. Every page route is
// wrapped by the guard for its view key; session resolution happens once
// per request in WithSession.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	ui := setupUIHandlers(services)
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		T:            ui.T,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	mux.Handle("GET /login", Guard(ViewLogin, http.HandlerFunc(authHandlers.LoginPage)))
	mux.Handle("POST /login", Guard(ViewLogin, http.HandlerFunc(authHandlers.Login)))
	mux.Handle("POST /logout", http.HandlerFunc(authHandlers.Logout))

	mux.Handle("GET /{$}", Guard("dashboard", http.HandlerFunc(ui.Index)))

	mux.Handle("GET /employees", Guard("employees", http.HandlerFunc(ui.EmployeesList)))
	mux.Handle("GET /employees/new", Guard("employees", http.HandlerFunc(ui.EmployeesNew)))
	mux.Handle("POST /employees", Guard("employees", http.HandlerFunc(ui.EmployeesCreate)))
	mux.Handle("GET /employees/managers/new", Guard("employees", http.HandlerFunc(ui.ManagersNew)))
	mux.Handle("POST /employees/managers", Guard("employees", http.HandlerFunc(ui.ManagersCreate)))
	mux.Handle("GET /employees/{id}/edit", Guard("employees", http.HandlerFunc(ui.EmployeesEdit)))
	mux.Handle("POST /employees/{id}", Guard("employees", http.HandlerFunc(ui.EmployeesUpdate)))
	mux.Handle("POST /employees/{id}/deactivate", Guard("employees", http.HandlerFunc(ui.EmployeesDeactivate)))

	mux.Handle("GET /departments", Guard("departments", http.HandlerFunc(ui.DepartmentsList)))
	mux.Handle("POST /departments", Guard("departments", http.HandlerFunc(ui.DepartmentsCreate)))
	mux.Handle("GET /departments/{id}", Guard("departments", http.HandlerFunc(ui.DepartmentsShow)))
	mux.Handle("POST /departments/{id}/employees", Guard("departments", http.HandlerFunc(ui.DepartmentsAddEmployee)))
	mux.Handle("POST /departments/{id}/manager", Guard("departments", http.HandlerFunc(ui.DepartmentsAssignManager)))

	mux.Handle("GET /leaves", Guard("leaves", http.HandlerFunc(ui.LeavesList)))
	mux.Handle("POST /leaves/{id}/approve", Guard("leaves", http.HandlerFunc(ui.LeavesApprove)))
	mux.Handle("POST /leaves/{id}/reject", Guard("leaves", http.HandlerFunc(ui.LeavesReject)))

	mux.Handle("GET /my-leaves", Guard("my-leaves", http.HandlerFunc(ui.MyLeaves)))
	mux.Handle("POST /my-leaves", Guard("my-leaves", http.HandlerFunc(ui.MyLeavesSubmit)))

	mux.Handle("GET /payroll", Guard("payroll", http.HandlerFunc(ui.PayrollPage)))
	mux.Handle("GET /reports", Guard("reports", http.HandlerFunc(ui.ReportsPage)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for live editing
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	// Everything unmatched goes through the auth-aware NotFound redirect.
	mux.Handle("/", http.HandlerFunc(ui.NotFound))

	handler := WithSession(services.Auth)(mux)
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler = Logging(logger)(handler)
	return Recover(logger)(handler)
}

// setupUIHandlers creates UI handlers with the template renderer.
// In dev mode templates load from disk; in production from the embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	switch {
	case services.TemplateFS != nil:
		templateFS = services.TemplateFS
	case services.IsDev:
		templateFS = os.DirFS(TemplatePathFromRoot)
	default:
		sub, err := fs.Sub(hrmsadmin.TemplateFS, "frontend/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
	}

	return &UIHandlers{
		T:           tr,
		Employees:   services.Employees,
		Departments: services.Departments,
		Leaves:      services.Leaves,
		Payroll:     services.Payroll,
		Reports:     services.Reports,
		Dashboard:   services.Dashboard,
		IsDev:       services.IsDev,
		Logger:      services.Logger,
	}
}

// staticHandler serves /static/* assets from disk in dev mode and from
// the embedded FS in production.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot)))
	}
	staticSub, err := fs.Sub(hrmsadmin.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot)))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(staticSub)))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Template and asset paths used when loading from disk.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
	StaticPathFromRoot   = "frontend/static"
)
