package authflow

import (
	"context"

	"github.com/dmitrymomot/authflow/pkg/provider"
)

// Backend is the authentication backend the pipeline observes and drives.
// It is an opaque collaborator: credential custody, token signing, and the
// session wire protocol all live behind this interface.
type Backend interface {
	// SessionChanges returns a stream of the current authenticated
	// principal, emitting nil when signed out. The stream reflects the
	// backend session for the lifetime of ctx and is closed when ctx is
	// cancelled. The first emission reports the restored session state.
	SessionChanges(ctx context.Context) <-chan *Principal

	// SignIn runs an interactive sign-in with the given provider.
	// Typed failures are returned as *SignInError; anything else is a
	// transport-level error.
	SignIn(ctx context.Context, p *provider.Provider) (*Principal, error)

	// IssueToken returns a signed identity token for the principal.
	// forceRefresh bypasses any backend-side token cache, guaranteeing the
	// token belongs to this principal and not a predecessor.
	IssueToken(ctx context.Context, principal *Principal, forceRefresh bool) (string, error)

	// LinkCredential attaches a provider credential to the principal.
	LinkCredential(ctx context.Context, principal *Principal, cred provider.Credential) (*Principal, error)
}

// Navigator is the pipeline's sole outbound navigation effect: it accepts an
// opaque path string and moves the user there.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}
