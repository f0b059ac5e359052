package bootstrap

import (
	"log/slog"

	"github.com/workforce-hrms/admin-ui/config"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

// ServiceContainer holds all the application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	Employees   *service.EmployeeService
	Departments *service.DepartmentService
	Leaves      *service.LeaveService
	Payroll     *service.PayrollService
	Reports     *service.ReportService
	Dashboard   *service.DashboardService
	Filter      *service.ListFilterService
}

// InitServices constructs all services over the initialized adapters.
func InitServices(cfg config.AppConfig, adapters *AdapterContainer, logger *slog.Logger) ServiceContainer {
	if logger == nil {
		logger = slog.Default()
	}

	filter := service.NewListFilterService(service.ListFilterServiceOptions{})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Prober:   adapters.Backend,
		Sessions: adapters.Sessions,
		Config: service.AuthConfig{
			AdminUsername:          cfg.Auth.AdminUsername,
			CEOUsername:            cfg.Auth.CEOUsername,
			PayrollProbeEmployeeID: cfg.Auth.PayrollProbeEmployeeID,
			SessionTTL:             cfg.Auth.SessionTTL,
		},
	})

	return ServiceContainer{
		Auth:        auth,
		Employees:   service.NewEmployeeService(service.EmployeeServiceOptions{API: adapters.Backend, Filter: filter}),
		Departments: service.NewDepartmentService(service.DepartmentServiceOptions{API: adapters.Backend}),
		Leaves:      service.NewLeaveService(service.LeaveServiceOptions{API: adapters.Backend}),
		Payroll:     service.NewPayrollService(service.PayrollServiceOptions{API: adapters.Backend}),
		Reports:     service.NewReportService(service.ReportServiceOptions{API: adapters.Backend}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Employees:   adapters.Backend,
			Departments: adapters.Backend,
			Leaves:      adapters.Backend,
			Logger:      logger,
		}),
		Filter: filter,
	}
}
