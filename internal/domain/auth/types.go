package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"encoding/base64"
	"log/slog"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCEO      Role = "CEO"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCEO, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Privileged reports whether r may see the management views
// (employees, departments, leave management, payroll, reports).
// There is no ordering between the privileged roles; membership is the
// only query the views need.
func (r Role) Privileged() bool {
	switch r {
	case RoleAdmin, RoleCEO, RoleManager:
		return true
	}
	return false
}

// Credential is the opaque transport secret derived from username+password.
// It is attached as "Authorization: Basic <credential>" to every backend
// call made on behalf of the session. It must never be logged or displayed.
type Credential string

// NewCredential builds the basic-auth credential from the literal pair.
// No trimming or normalization happens here; callers own any cleanup.
func NewCredential(username, password string) Credential {
	return Credential(base64.StdEncoding.EncodeToString([]byte(username + ":" + password)))
}

// AuthorizationHeader returns the value for the Authorization request header.
func (c Credential) AuthorizationHeader() string {
	return "Basic " + string(c)
}

// String redacts the credential so accidental %v formatting cannot leak it.
func (c Credential) String() string { return "[REDACTED]" }

// LogValue redacts the credential from structured logs.
func (c Credential) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// Session is the authenticated identity we persist for a logged-in user.
// ID is an opaque session identifier; the browser only ever holds the ID.
//
// A Session is immutable once created: logout deletes it entirely, and a
// new login replaces it. There is no partial role upgrade.
type Session struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Credential Credential `json:"credential"`
	Role       Role       `json:"role"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

// LogValue keeps the credential out of structured logs.
func (s Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.ID),
		slog.String("username", s.Username),
		slog.String("role", string(s.Role)),
		slog.Time("expires_at", s.ExpiresAt),
	)
}
