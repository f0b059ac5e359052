package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Employees   ports.EmployeeAPI
	Departments ports.DepartmentAPI
	Leaves      ports.LeaveAPI
	Logger      *slog.Logger
}

// DashboardService assembles the landing page's stat cards. Each card's
// data is fetched concurrently, and a failed fetch degrades only that card.
type DashboardService struct {
	employees   ports.EmployeeAPI
	departments ports.DepartmentAPI
	leaves      ports.LeaveAPI
	logger      *slog.Logger
}

// Dashboard is one rendering of the landing page for one session.
// Unavailable marks cards whose backend fetch failed.
type Dashboard struct {
	TotalEmployees  int
	ActiveEmployees int
	Departments     int
	PendingLeaves   int
	OnLeaveToday    []model.Leave
	MyLeaves        []model.Leave

	Unavailable []string
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Employees == nil {
		panic("EmployeeAPI is required")
	}
	if opts.Departments == nil {
		panic("DepartmentAPI is required")
	}
	if opts.Leaves == nil {
		panic("LeaveAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		employees:   opts.Employees,
		departments: opts.Departments,
		leaves:      opts.Leaves,
		logger:      logger,
	}
}

// Build fetches the dashboard's cards concurrently for the given session.
// Privileged roles get the organization-wide cards; employees get their
// own leave status. Fetches may complete in any order, and each failure
// is recorded in Unavailable instead of failing the page.
func (s *DashboardService) Build(ctx context.Context, sess domainauth.Session) (*Dashboard, error) {
	dash := &Dashboard{}

	if !sess.Role.Privileged() {
		leaves, err := s.leaves.ListMyLeaves(ctx, sess.Credential)
		if err != nil {
			s.logger.WarnContext(ctx, "dashboard card fetch failed", "card", "my_leaves", "error", err)
			dash.Unavailable = append(dash.Unavailable, "my_leaves")
			return dash, nil
		}
		dash.MyLeaves = leaves
		return dash, nil
	}

	// One goroutine per card. Failures are reported on the channel rather
	// than as group errors, so one bad card never cancels the rest.
	var (
		employees   []model.Employee
		departments []model.Department
		allLeaves   []model.Leave
		today       []model.Leave
		failed      = make(chan string, 4)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if employees, err = s.employees.ListEmployees(gctx, sess.Credential); err != nil {
			s.logger.WarnContext(gctx, "dashboard card fetch failed", "card", "employees", "error", err)
			failed <- "employees"
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if departments, err = s.departments.ListDepartments(gctx, sess.Credential); err != nil {
			s.logger.WarnContext(gctx, "dashboard card fetch failed", "card", "departments", "error", err)
			failed <- "departments"
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if allLeaves, err = s.leaves.ListAllLeaves(gctx, sess.Credential); err != nil {
			s.logger.WarnContext(gctx, "dashboard card fetch failed", "card", "pending_leaves", "error", err)
			failed <- "pending_leaves"
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if today, err = s.leaves.ListActiveTodayLeaves(gctx, sess.Credential); err != nil {
			s.logger.WarnContext(gctx, "dashboard card fetch failed", "card", "on_leave_today", "error", err)
			failed <- "on_leave_today"
		}
		return nil
	})

	_ = g.Wait()
	close(failed)
	for card := range failed {
		dash.Unavailable = append(dash.Unavailable, card)
	}

	dash.TotalEmployees = len(employees)
	for _, e := range employees {
		if e.IsActive() {
			dash.ActiveEmployees++
		}
	}
	dash.Departments = len(departments)
	for _, l := range allLeaves {
		if l.IsPending() {
			dash.PendingLeaves++
		}
	}
	dash.OnLeaveToday = today

	return dash, nil
}
