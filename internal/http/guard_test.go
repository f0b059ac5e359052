package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
)

func sessionWithRole(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + string(role),
		Username:  "user",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestDecide_FullTable(t *testing.T) {
	privileged := []domainauth.Role{
		domainauth.RoleAdmin,
		domainauth.RoleCEO,
		domainauth.RoleManager,
	}
	privilegedViews := []string{"employees", "departments", "leaves", "payroll", "reports"}

	t.Run("no session", func(t *testing.T) {
		assert.Equal(t, DecisionRender, Decide(nil, ViewLogin))
		for _, view := range append(privilegedViews, "dashboard", "my-leaves", "bogus") {
			assert.Equal(t, DecisionRedirectLogin, Decide(nil, view), "view %s", view)
		}
	})

	t.Run("login with session redirects to default", func(t *testing.T) {
		for _, role := range append(privileged, domainauth.RoleEmployee) {
			assert.Equal(t, DecisionRedirectDefault, Decide(sessionWithRole(role), ViewLogin), "role %s", role)
		}
	})

	t.Run("dashboard renders for every role", func(t *testing.T) {
		for _, role := range append(privileged, domainauth.RoleEmployee) {
			assert.Equal(t, DecisionRender, Decide(sessionWithRole(role), "dashboard"), "role %s", role)
		}
	})

	t.Run("privileged views", func(t *testing.T) {
		for _, view := range privilegedViews {
			for _, role := range privileged {
				assert.Equal(t, DecisionRender, Decide(sessionWithRole(role), view), "role %s view %s", role, view)
			}
			assert.Equal(t, DecisionRedirectDefault, Decide(sessionWithRole(domainauth.RoleEmployee), view), "view %s", view)
		}
	})

	t.Run("my-leaves is employee-only", func(t *testing.T) {
		assert.Equal(t, DecisionRender, Decide(sessionWithRole(domainauth.RoleEmployee), "my-leaves"))
		for _, role := range privileged {
			assert.Equal(t, DecisionRedirectDefault, Decide(sessionWithRole(role), "my-leaves"), "role %s", role)
		}
	})

	t.Run("unknown view with session redirects to default", func(t *testing.T) {
		for _, role := range append(privileged, domainauth.RoleEmployee) {
			assert.Equal(t, DecisionRedirectDefault, Decide(sessionWithRole(role), "bogus"), "role %s", role)
		}
	})
}

func TestDecide_Deterministic(t *testing.T) {
	sess := sessionWithRole(domainauth.RoleManager)
	first := Decide(sess, "payroll")
	for range 10 {
		assert.Equal(t, first, Decide(sess, "payroll"))
	}
}
