package config

import "time"

// AuthConfig groups session lifetime and role-inference configuration.
//
// The HRMS backend exposes no role-claims endpoint, so roles are inferred at
// login time: two reserved usernames map directly to ADMIN and CEO, and
// everyone else is probed against a payroll record only managers and above
// can read. The reserved literals and the probe record are configurable so
// deployments with different seed data keep working.
type AuthConfig struct {
	// AdminUsername is the reserved login that always maps to the ADMIN role.
	AdminUsername string `env:"AUTH_ADMIN_USERNAME" envDefault:"admin"`

	// CEOUsername is the reserved login that always maps to the CEO role.
	CEOUsername string `env:"AUTH_CEO_USERNAME" envDefault:"ceo"`

	// PayrollProbeEmployeeID is the employee whose payroll record is read to
	// distinguish MANAGER from EMPLOYEE. Any failure of that read, including
	// not-found, classifies the caller as EMPLOYEE.
	PayrollProbeEmployeeID int `env:"AUTH_PAYROLL_PROBE_EMPLOYEE_ID" envDefault:"1"`

	// SessionTTL is how long a session stays valid without a new login.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.AdminUsername == "" {
		a.AdminUsername = "admin"
	}
	if a.CEOUsername == "" {
		a.CEOUsername = "ceo"
	}
	if a.PayrollProbeEmployeeID <= 0 {
		a.PayrollProbeEmployeeID = 1
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 12 * time.Hour
	}
}
