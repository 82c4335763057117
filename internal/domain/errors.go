package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for remote operations. Callers match with errors.Is /
// errors.As and convert to user-visible messages at the HTTP boundary;
// no remote failure is fatal to the process.
var (
	// ErrNotConfigured: no valid endpoint+key from any source. The UI
	// should route the user to settings.
	ErrNotConfigured = errors.New("remote store is not configured")

	// ErrNotFound: a mutation targeted an id that matched no row.
	ErrNotFound = errors.New("villa not found")

	// ErrSchemaMissing: the villas table does not exist remotely.
	// Surfaced as a setup-instructions hint, not a generic failure.
	ErrSchemaMissing = errors.New("villas table does not exist in the remote store")
)

// AuthError is a sign-in rejection. Reason carries the provider's own
// message so it can be shown inline on the login form.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// TransportError wraps any other network/provider failure. The wrapped
// message is surfaced verbatim to the user; there is no automatic retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
