package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// AuthConfig groups the tunables of the role inference cascade.
type AuthConfig struct {
	// AdminUsername and CEOUsername are the reserved usernames that map
	// directly to ADMIN and CEO without probing.
	AdminUsername string
	CEOUsername   string
	// PayrollProbeEmployeeID is the employee whose payroll record is
	// fetched to distinguish MANAGER from EMPLOYEE.
	PayrollProbeEmployeeID int
	// SessionTTL bounds how long a session stays valid.
	SessionTTL time.Duration
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Prober   ports.CredentialProber
	Sessions ports.SessionStore
	Config   AuthConfig
}

// AuthService verifies credentials against the HRMS backend, infers the
// caller's role from probe outcomes, and manages session persistence.
//
// The backend exposes no "who am I" endpoint, so the role is inferred:
// reserved usernames map straight to ADMIN/CEO, and everyone else is
// classified by whether they can read another employee's payroll record.
type AuthService struct {
	prober   ports.CredentialProber
	sessions ports.SessionStore
	cfg      AuthConfig

	// generations orders logins against logouts per username. Logging a
	// user out bumps that user's counter; a login whose probes were in
	// flight across the logout refuses to persist. Other users' logins
	// are unaffected.
	mu          sync.Mutex
	generations map[string]uint64
}

// ErrLoginSuperseded is returned when a logout happened while a login's
// backend probes were in flight. The login is safe to retry.
var ErrLoginSuperseded = errors.New("login superseded by logout")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Prober == nil {
		panic("CredentialProber is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	cfg := opts.Config
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.CEOUsername == "" {
		cfg.CEOUsername = "ceo"
	}
	if cfg.PayrollProbeEmployeeID == 0 {
		cfg.PayrollProbeEmployeeID = 1
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &AuthService{
		prober:      opts.Prober,
		sessions:    opts.Sessions,
		cfg:         cfg,
		generations: make(map[string]uint64),
	}
}

func (s *AuthService) loginGeneration(username string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[username]
}

func (s *AuthService) bumpLoginGeneration(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[username]++
}

// Login verifies the credential against the backend, infers the role, and
// persists a new session. Username and password are used exactly as given;
// no trimming or case folding.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domainauth.Session, error) {
	if username == "" || password == "" {
		return nil, ports.ErrInvalidCredentials
	}

	gen := s.loginGeneration(username)
	cred := domainauth.NewCredential(username, password)

	// Validation probe. Any auth-shaped failure means the credential is
	// bad; only transport failures surface as distinct errors.
	if err := s.prober.VerifyCredential(ctx, cred); err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) || errors.Is(err, ports.ErrForbidden) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify credential: %w", err)
	}

	// Role cascade. The payroll probe only runs for non-reserved
	// usernames; any probe failure reads as "no access". A 403 and a 404
	// are indistinguishable here, and an inconclusive probe must not
	// grant privilege.
	payrollAccessible := false
	if username != s.cfg.AdminUsername && username != s.cfg.CEOUsername {
		payrollAccessible = s.prober.ProbePayrollAccess(ctx, cred, s.cfg.PayrollProbeEmployeeID) == nil
	}
	role := inferRole(username, s.cfg.AdminUsername, s.cfg.CEOUsername, payrollAccessible)

	// A logout of this user that landed while the probes were running
	// wins; do not resurrect the session.
	if s.loginGeneration(username) != gen {
		return nil, ErrLoginSuperseded
	}

	session := domainauth.Session{
		ID:         uuid.NewString(),
		Username:   username,
		Credential: cred,
		Role:       role,
		ExpiresAt:  time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// inferRole maps probe outcomes to a role. Reserved usernames
// short-circuit; everyone else is MANAGER exactly when they could read
// another employee's payroll record.
func inferRole(username, adminUsername, ceoUsername string, payrollAccessible bool) domainauth.Role {
	switch username {
	case adminUsername:
		return domainauth.RoleAdmin
	case ceoUsername:
		return domainauth.RoleCEO
	}
	if payrollAccessible {
		return domainauth.RoleManager
	}
	return domainauth.RoleEmployee
}

// GetSession retrieves a live session by ID. Expired or missing sessions
// report ports.ErrSessionNotFound.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, ports.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("delete expired session: %w", deleteErr)
		}
		return nil, ports.ErrSessionNotFound
	}

	return &session, nil
}

// Logout removes a session and bumps its user's login generation so any
// login of that user still probing the backend cannot complete afterwards.
// A session that is already gone has no user to supersede; the delete
// stays idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if sess, err := s.sessions.Get(ctx, sessionID); err == nil {
		s.bumpLoginGeneration(sess.Username)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
