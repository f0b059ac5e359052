package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialProber = (*MockCredentialProber)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
)

// MockCredentialProber simulates the backend's auth responses. By default
// every credential verifies and no one has payroll access; override the
// Func fields for specific outcomes.
type MockCredentialProber struct {
	VerifyFunc func(ctx context.Context, cred domainauth.Credential) error
	ProbeFunc  func(ctx context.Context, cred domainauth.Credential, employeeID int) error

	// Call tracking for assertions on probe ordering and arguments.
	VerifyCalls []domainauth.Credential
	ProbeCalls  []int
}

func (m *MockCredentialProber) VerifyCredential(ctx context.Context, cred domainauth.Credential) error {
	m.VerifyCalls = append(m.VerifyCalls, cred)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, cred)
	}
	return nil
}

func (m *MockCredentialProber) ProbePayrollAccess(ctx context.Context, cred domainauth.Credential, employeeID int) error {
	m.ProbeCalls = append(m.ProbeCalls, employeeID)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, cred, employeeID)
	}
	return ports.ErrForbidden
}

// MemorySessionStore is an in-memory session store for unit tests. The
// Func fields, when set, replace the default map behavior so tests can
// inject storage failures.
type MemorySessionStore struct {
	SaveFunc   func(ctx context.Context, sess domainauth.Session) error
	GetFunc    func(ctx context.Context, id string) (domainauth.Session, error)
	DeleteFunc func(ctx context.Context, id string) error

	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sess)
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	sess, ok := m.sessions[id]
	if id == "" || !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }
