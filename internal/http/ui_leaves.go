package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// LeavesList serves the leave management page. The tab query selects
// between the pending queue, all requests, approved, and on-leave-today;
// summary_id looks up one employee's leave counters alongside the table.
// GET /leaves?tab=<pending|all|approved|today>&summary_id=<employee>.
func (h *UIHandlers) LeavesList(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "all", "approved", "today":
	default:
		tab = "pending"
	}
	summaryID, _ := strconv.ParseInt(r.URL.Query().Get("summary_id"), 10, 64)

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Leave Management - HRMS Admin",
			PageTitle:       "Leave Management",
			CurrentPage:     "leaves",
			ContentTemplate: "page-leaves",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Tab"] = tab

			var (
				leaves []model.Leave
				err    error
			)
			switch tab {
			case "all":
				leaves, err = h.Leaves.ListAll(ctx, cred)
			case "approved":
				leaves, err = h.Leaves.ListApproved(ctx, cred)
			case "today":
				leaves, err = h.Leaves.ListActiveToday(ctx, cred)
			default:
				leaves, err = h.Leaves.ListPending(ctx, cred)
			}
			if err != nil {
				return err
			}
			data["Leaves"] = leaves

			if summaryID > 0 {
				data["SummaryID"] = summaryID
				summary, err := h.Leaves.Summary(ctx, cred, summaryID)
				switch {
				case err == nil:
					data["Summary"] = summary
				case errors.Is(err, ports.ErrNotFound):
					data["SummaryNotFound"] = true
				default:
					return err
				}
			}
			return nil
		},
	})
}

// LeavesApprove approves a pending request.
// POST /leaves/{id}/approve.
func (h *UIHandlers) LeavesApprove(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, "approve")
}

// LeavesReject rejects a pending request.
// POST /leaves/{id}/reject.
func (h *UIHandlers) LeavesReject(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, "reject")
}

func (h *UIHandlers) decideLeave(w http.ResponseWriter, r *http.Request, action string) {
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

	if action == "approve" {
		err = h.Leaves.Approve(r.Context(), cred, id)
	} else {
		err = h.Leaves.Reject(r.Context(), cred, id)
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "leave decision failed",
			"leave_id", id, "action", action, "error", err)
		setFlash(w, "Could not update the leave request.")
	} else if action == "approve" {
		setFlash(w, "Leave approved.")
	} else {
		setFlash(w, "Leave rejected.")
	}
	http.Redirect(w, r, "/leaves", http.StatusSeeOther)
}
