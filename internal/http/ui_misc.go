package httpx

import (
	"net/http"
	"net/url"
)

// NotFound handles unmatched paths. Authenticated visitors land back on
// the dashboard; everyone else goes to the login page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, DefaultPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login?redirect_uri="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
}
