package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

// AuthServiceInterface defines the auth operations the HTTP layer needs.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers provides HTTP handlers for the login and logout flows.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	T            *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, loginPageData{
		RedirectURI: safeRedirectPath(r.URL.Query().Get("redirect_uri")),
	})
}

// Login verifies the submitted credentials and establishes a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	redirectURI := safeRedirectPath(r.PostFormValue("redirect_uri"))

	session, err := h.Svc.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrInvalidCredentials):
			h.renderLogin(w, r, loginPageData{
				Username:    username,
				RedirectURI: redirectURI,
				Error:       "Invalid username or password.",
			})
		case errors.Is(err, service.ErrLoginSuperseded):
			h.renderLogin(w, r, loginPageData{
				Username:    username,
				RedirectURI: redirectURI,
				Error:       "Your login was interrupted. Please try again.",
			})
		default:
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
			h.renderLogin(w, r, loginPageData{
				Username:    username,
				RedirectURI: redirectURI,
				Error:       "The HR system is unreachable. Please try again shortly.",
			})
		}
		return
	}

	h.setSessionCookie(w, r, session)
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// Logout tears down the server-side session and clears the cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type loginPageData struct {
	Username    string
	RedirectURI string
	Error       string
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, data loginPageData) {
	page := map[string]any{
		"Title":       "Sign in - HRMS Admin",
		"Username":    data.Username,
		"RedirectURI": data.RedirectURI,
	}
	if data.Error != "" {
		page["Error"] = data.Error
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
	}
	if err := h.T.renderTemplate(w, "login-page", page); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// setSessionCookie issues the HttpOnly session cookie. The cookie holds
// only the opaque session ID; the credential never leaves the server.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie clears a cookie by setting it to expire immediately,
// mirroring the attributes used when setting it.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// safeRedirectPath allows only same-site relative paths; anything else
// falls back to the default view.
func safeRedirectPath(raw string) string {
	if raw == "" {
		return DefaultPath
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return DefaultPath
	}
	return u.RequestURI()
}
