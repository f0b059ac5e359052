package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
)

// SessionCookieName is the only state the browser holds: an opaque session
// ID, HttpOnly so page scripts never see it.
const SessionCookieName = "session_id"

// SessionResolver looks up a live session by ID. Implemented by
// service.AuthService.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a middleware that resolves the session cookie and,
// when it names a live session, stores the session in the request context.
// It never rejects: requests without a valid session proceed
// unauthenticated, and the guard decides what they may see.
func WithSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				if session, err := resolver.GetSession(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(SetSessionInContext(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guard wraps a view handler with the access decision for its view key.
// Redirect targets carry no state; the login redirect keeps the requested
// path so a successful login can return there.
func Guard(view string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		switch Decide(sess, view) {
		case DecisionRender:
			next.ServeHTTP(w, r)
		case DecisionRedirectLogin:
			http.Redirect(w, r, "/login?redirect_uri="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		case DecisionRedirectDefault:
			http.Redirect(w, r, DefaultPath, http.StatusSeeOther)
		}
	})
}
