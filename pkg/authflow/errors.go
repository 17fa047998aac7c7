package authflow

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/authflow/pkg/provider"
)

var (
	// ErrNoPendingLink is returned when cancelling a pending link that is not active.
	ErrNoPendingLink = errors.New("no pending credential link")

	// ErrInvalidToken is returned when an identity token cannot be decoded
	// or is missing its subject.
	ErrInvalidToken = errors.New("invalid identity token")

	// ErrNilPrincipal is returned when an operation requires a signed-in principal.
	ErrNilPrincipal = errors.New("no authenticated principal")
)

// Backend sign-in failure codes. The values mirror the identity backend's
// wire-level error codes so they can be matched without translation.
const (
	CodeCredentialExists   = "credential-exists-with-different-credential"
	CodeInvalidCredential  = "invalid-credential"
	CodeUserDisabled       = "user-disabled"
	CodePopupClosedByUser  = "popup-closed-by-user"
	CodeNetworkRequestFail = "network-request-failed"
)

// SignInError is a typed sign-in failure from the backend. For the
// credential-conflict case it carries the conflicting email and the
// provider-issued credential to be linked after re-authentication.
type SignInError struct {
	Code    string
	Message string
	Email   string
	Pending *provider.Credential
}

func (e *SignInError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sign-in failed (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("sign-in failed (%s)", e.Code)
}

// IsConflict reports whether this failure is the credential-conflict case
// recoverable via pending-link resolution.
func (e *SignInError) IsConflict() bool {
	return e.Code == CodeCredentialExists
}
