package httpx

import (
	"context"
	"net/http"
	"strconv"
	"sync"
)

// ReportsPage serves the reports page with every available aggregate.
// Widgets load independently; a failed aggregate renders as unavailable.
// GET /reports?top=<n>&months=<n>&threshold=<amount>.
func (h *UIHandlers) ReportsPage(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	top, _ := strconv.Atoi(r.URL.Query().Get("top"))
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	threshold, _ := strconv.ParseFloat(r.URL.Query().Get("threshold"), 64)

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Reports - HRMS Admin",
			PageTitle:       "Reports",
			CurrentPage:     "reports",
			ContentTemplate: "page-reports",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			var (
				mu          sync.Mutex
				wg          sync.WaitGroup
				unavailable []string
			)
			widget := func(name string, fetch func() (any, error)) {
				wg.Add(1)
				go func() {
					defer wg.Done()
					v, err := fetch()
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						h.logger().WarnContext(ctx, "report widget fetch failed", "widget", name, "error", err)
						unavailable = append(unavailable, name)
						return
					}
					data[name] = v
				}()
			}

			widget("Summary", func() (any, error) { return h.Reports.Summary(ctx, cred) })
			widget("TopEarners", func() (any, error) { return h.Reports.TopEarners(ctx, cred, top) })
			widget("RecentJoiners", func() (any, error) { return h.Reports.RecentJoiners(ctx, cred, months) })
			widget("HeadCounts", func() (any, error) { return h.Reports.HeadCountByDepartment(ctx, cred) })
			widget("LeaveTypeStats", func() (any, error) { return h.Reports.LeaveTypeStats(ctx, cred) })
			widget("SalaryByDepartment", func() (any, error) { return h.Reports.SalaryByDepartment(ctx, cred) })
			widget("StatusDistribution", func() (any, error) { return h.Reports.StatusDistribution(ctx, cred) })
			widget("SalaryPartition", func() (any, error) { return h.Reports.SalaryPartition(ctx, cred) })
			widget("HighSalaryDepartments", func() (any, error) { return h.Reports.HighSalaryDepartments(ctx, cred, threshold) })

			wg.Wait()
			data["Unavailable"] = unavailable
			return nil
		},
	})
}
