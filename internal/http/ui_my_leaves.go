package httpx

import (
	"context"
	"net/http"

	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	"github.com/workforce-hrms/admin-ui/internal/http/validation"
)

// MyLeaves serves an employee's own leave status and the request form.
// GET /my-leaves.
func (h *UIHandlers) MyLeaves(w http.ResponseWriter, r *http.Request) {
	h.renderMyLeaves(w, r, myLeavesState{})
}

// MyLeavesSubmit files a new leave request for the calling employee.
// POST /my-leaves.
func (h *UIHandlers) MyLeavesSubmit(w http.ResponseWriter, r *http.Request) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := validation.LeaveForm{
		LeaveType: r.PostFormValue("leave_type"),
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
		Reason:    r.PostFormValue("reason"),
	}
	if errs := validation.ValidateLeaveForm(form); len(errs) > 0 {
		h.renderMyLeaves(w, r, myLeavesState{Form: form, Errors: errs, Error: errMsgFixBelow})
		return
	}

	req := model.CreateLeaveRequest{
		LeaveType: model.LeaveType(form.LeaveType),
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		Reason:    form.Reason,
	}
	if _, err := h.Leaves.Submit(r.Context(), cred, req); err != nil {
		h.logger().WarnContext(r.Context(), "leave request failed", "error", err)
		h.renderMyLeaves(w, r, myLeavesState{
			Form: form, Error: "Could not submit the leave request. Please try again.",
		})
		return
	}

	setFlash(w, "Leave request submitted.")
	http.Redirect(w, r, "/my-leaves", http.StatusSeeOther)
}

type myLeavesState struct {
	Form   validation.LeaveForm
	Errors map[string]string
	Error  string
}

func (h *UIHandlers) renderMyLeaves(w http.ResponseWriter, r *http.Request, state myLeavesState) {
	_, cred, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "My Leaves - HRMS Admin",
			PageTitle:       "My Leaves",
			CurrentPage:     "my-leaves",
			ContentTemplate: "page-my-leaves",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
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
			data["LeaveTypes"] = []model.LeaveType{
				model.LeaveTypeSick,
				model.LeaveTypeCasual,
				model.LeaveTypeEarned,
				model.LeaveTypeUnpaid,
				model.LeaveTypeMaternal,
			}

			leaves, err := h.Leaves.ListMine(ctx, cred)
			if err != nil {
				return err
			}
			data["Leaves"] = leaves
			return nil
		},
	})
}
