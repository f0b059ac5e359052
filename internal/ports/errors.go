package ports

// Error taxonomy for backend calls. Adapters classify transport failures
// into these sentinels; services and handlers branch with errors.Is and
// never inspect status codes themselves.

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const (
	// ErrInvalidCredentials means the backend rejected the Authorization
	// header (the login validation probe failed).
	ErrInvalidCredentials = sentinelError("invalid credentials")

	// ErrForbidden means the authenticated caller's role does not allow the
	// requested resource.
	ErrForbidden = sentinelError("forbidden")

	// ErrNotFound means the backend has no resource for the identifier.
	ErrNotFound = sentinelError("not found")

	// ErrSessionNotFound is returned by SessionStore.Get when no usable
	// session exists for the ID.
	ErrSessionNotFound = sentinelError("session not found")
)
