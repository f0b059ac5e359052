package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
	"github.com/workforce-hrms/admin-ui/internal/service"
)

type stubAuthService struct {
	LoginFunc  func(ctx context.Context, username, password string) (*domainauth.Session, error)
	LogoutFunc func(ctx context.Context, sessionID string) error

	LogoutCalls []string
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domainauth.Session, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, username, password)
	}
	return nil, ports.ErrInvalidCredentials
}

func (s *stubAuthService) GetSession(_ context.Context, _ string) (*domainauth.Session, error) {
	return nil, ports.ErrSessionNotFound
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.LogoutCalls = append(s.LogoutCalls, sessionID)
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func newAuthHandlers(t *testing.T, svc *stubAuthService) *AuthHandlers {
	t.Helper()
	return &AuthHandlers{
		Svc:    svc,
		T:      RequireTemplateRenderer(t),
		Logger: discardLogger(),
	}
}

func loginForm(username, password, redirectURI string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	if redirectURI != "" {
		form.Set("redirect_uri", redirectURI)
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	session := &domainauth.Session{
		ID:         "sess-42",
		Username:   "jordan",
		Credential: domainauth.NewCredential("jordan", "pw"),
		Role:       domainauth.RoleManager,
		ExpiresAt:  time.Now().Add(12 * time.Hour),
	}
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, username, password string) (*domainauth.Session, error) {
			assert.Equal(t, "jordan", username)
			assert.Equal(t, "pw", password)
			return session, nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, loginForm("jordan", "pw", "/leaves"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/leaves", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "sess-42", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.NotContains(t, cookie.Value, "pw", "cookie must hold only the opaque session ID")
}

func TestLogin_InvalidCredentialsRerendersForm(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, _, _ string) (*domainauth.Session, error) {
			return nil, ports.ErrInvalidCredentials
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, loginForm("jordan", "nope", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid username or password.")
	assert.Contains(t, body, "jordan", "username should be preserved in the form")
	assert.Empty(t, rec.Result().Cookies(), "failed login must not set a session cookie")
}

func TestLogin_SupersededShowsRetryMessage(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, _, _ string) (*domainauth.Session, error) {
			return nil, service.ErrLoginSuperseded
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, loginForm("jordan", "pw", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your login was interrupted.")
}

func TestLogin_BackendFailureShowsGenericMessage(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, _, _ string) (*domainauth.Session, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, loginForm("jordan", "pw", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The HR system is unreachable.")
	assert.NotContains(t, body, "connection refused", "transport errors must not leak to the page")
}

func TestLogin_UnsafeRedirectFallsBackToDefault(t *testing.T) {
	session := &domainauth.Session{
		ID:        "sess-9",
		Username:  "jordan",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, _, _ string) (*domainauth.Session, error) {
			return session, nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, loginForm("jordan", "pw", "https://evil.example/phish"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultPath, rec.Header().Get("Location"))
}

func TestLoginPage_Renders(t *testing.T) {
	h := newAuthHandlers(t, &stubAuthService{})

	rec := httptest.NewRecorder()
	h.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/login?redirect_uri=/reports", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{"username", "password", "/reports"}), body)
}

func TestLogout_DeletesSessionAndClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	h := newAuthHandlers(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-7"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{"sess-7"}, svc.LogoutCalls)

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			found = true
			assert.Less(t, cookie.MaxAge, 0, "session cookie must be expired")
			assert.Empty(t, cookie.Value)
		}
	}
	assert.True(t, found, "expected an expiring session cookie")
}

func TestLogout_WithoutCookieStillRedirects(t *testing.T) {
	svc := &stubAuthService{}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, svc.LogoutCalls, "no cookie means nothing to delete")
}

func TestSafeRedirectPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", DefaultPath},
		{"relative path", "/leaves", "/leaves"},
		{"path with query", "/employees?q=ada", "/employees?q=ada"},
		{"absolute url", "https://evil.example/", DefaultPath},
		{"protocol relative", "//evil.example/", DefaultPath},
		{"missing leading slash", "leaves", DefaultPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, safeRedirectPath(tc.in))
		})
	}
}
