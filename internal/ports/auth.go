package ports

// Package ports defines interfaces (hexagonal ports) for the dashboard's
// outward-facing behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions.
//
// Get must return ErrSessionNotFound for absent, expired, or unreadable
// entries; callers treat every one of those as "no session". Delete is
// idempotent.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// CredentialProber issues the authenticated probe requests the login flow
// uses to validate a credential and discover its privilege level. The
// backend has no role-claims endpoint, so role discovery works by testing
// access to privilege-gated resources.
type CredentialProber interface {
	// VerifyCredential issues an authenticated read every role is allowed
	// (the employee list). A nil return means the credential is valid.
	VerifyCredential(ctx context.Context, cred domainauth.Credential) error

	// ProbePayrollAccess issues an authenticated read of one employee's
	// payroll record, which only managers and above can see. A nil return
	// means the caller holds manager-tier access. Forbidden and not-found
	// are indistinguishable at this layer; both mean "not a manager".
	ProbePayrollAccess(ctx context.Context, cred domainauth.Credential, employeeID int) error
}
