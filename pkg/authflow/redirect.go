package authflow

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/authflow/pkg/deeplink"
	"github.com/dmitrymomot/authflow/pkg/logger"
)

// Default landing destinations per audience.
const (
	DefaultAdminLanding     = "/admin"
	DefaultCandidateLanding = "/jobs"
	DefaultCompanyLanding   = "/company"
)

// Router decides the single post-authentication destination. A stored
// deep-link target always wins and is consumed in the process; otherwise the
// claims pick a role-based landing page.
type Router struct {
	deeplinks deeplink.Store
	nav       Navigator
	logger    *slog.Logger

	adminLanding     string
	candidateLanding string
	companyLanding   string
}

// RouterOption configures a Router during construction.
type RouterOption func(*Router)

// WithRouterLogger sets a custom logger for the router.
func WithRouterLogger(log *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = log
	}
}

// WithAdminLanding overrides the admin landing destination.
func WithAdminLanding(path string) RouterOption {
	return func(r *Router) {
		if path != "" {
			r.adminLanding = path
		}
	}
}

// WithCandidateLanding overrides the candidate landing destination.
func WithCandidateLanding(path string) RouterOption {
	return func(r *Router) {
		if path != "" {
			r.candidateLanding = path
		}
	}
}

// WithCompanyLanding overrides the company landing destination.
func WithCompanyLanding(path string) RouterOption {
	return func(r *Router) {
		if path != "" {
			r.companyLanding = path
		}
	}
}

// NewRouter creates a redirect router over the given deep-link store and
// navigator.
func NewRouter(deeplinks deeplink.Store, nav Navigator, opts ...RouterOption) *Router {
	r := &Router{
		deeplinks:        deeplinks,
		nav:              nav,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		adminLanding:     DefaultAdminLanding,
		candidateLanding: DefaultCandidateLanding,
		companyLanding:   DefaultCompanyLanding,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route decides and performs exactly one navigation for a fresh sign-in.
// Precedence, first match wins:
//
//  1. a stored deep-link target (consumed even when it wins over a role)
//  2. role "admin"
//  3. account type "candidate"
//  4. account type "company"
//
// With no matching rule the user stays on the current view; Route returns an
// empty destination and no error.
func (r *Router) Route(ctx context.Context, claims *Claims) (string, error) {
	target, err := r.deeplinks.Take(ctx)
	if err != nil {
		// A broken deep-link store must not strand the user; fall back to
		// role-based landing.
		r.logger.ErrorContext(ctx, "failed to read deep-link target", logger.Component("router"), logger.Error(err))
		target = ""
	}
	if target != "" {
		return target, r.navigate(ctx, target)
	}

	if claims == nil {
		return "", nil
	}

	switch {
	case claims.Role == RoleAdmin:
		return r.adminLanding, r.navigate(ctx, r.adminLanding)
	case claims.AccountType == AccountTypeCandidate:
		return r.candidateLanding, r.navigate(ctx, r.candidateLanding)
	case claims.AccountType == AccountTypeCompany:
		return r.companyLanding, r.navigate(ctx, r.companyLanding)
	}

	r.logger.DebugContext(ctx, "no routing rule matched, staying on current view",
		logger.Component("router"),
		logger.Role(claims.Role),
	)
	return "", nil
}

func (r *Router) navigate(ctx context.Context, path string) error {
	r.logger.InfoContext(ctx, "navigating after sign-in", logger.Component("router"), logger.Path(path))
	return r.nav.Navigate(ctx, path)
}
