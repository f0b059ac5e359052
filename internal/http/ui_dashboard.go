package httpx

import (
	"context"
	"net/http"
)

// Index serves the landing page with the role-appropriate stat cards.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := sessionCredential(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:           "Dashboard - HRMS Admin",
			PageTitle:       "Dashboard",
			CurrentPage:     "dashboard",
			ContentTemplate: "page-dashboard",
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			dash, err := h.Dashboard.Build(ctx, *sess)
			if err != nil {
				return err
			}
			data["Dashboard"] = dash
			return nil
		},
	})
}
