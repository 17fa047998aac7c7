package authflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/authflow/pkg/logger"
	"github.com/dmitrymomot/authflow/pkg/notifier"
	"github.com/dmitrymomot/authflow/pkg/provider"
)

// SignInService drives interactive sign-in attempts and recovers from
// credential conflicts.
//
// A sign-in attempt runs Idle -> Attempting and ends in one of three states:
// signed in (optionally completing a pending credential link first), conflict
// pending (the email belongs to a different provider; the failing credential
// is parked in shared state until the user re-authenticates with their
// original provider), or failed (a transient notification, nothing persisted).
type SignInService struct {
	backend  Backend
	state    *State
	router   *Router
	notifier notifier.Notifier
	logger   *slog.Logger
}

// SignInOption configures a SignInService during construction.
type SignInOption func(*SignInService)

// WithSignInLogger sets a custom logger for the service.
func WithSignInLogger(log *slog.Logger) SignInOption {
	return func(s *SignInService) {
		s.logger = log
	}
}

// WithSignInNotifier sets the user-notification channel.
func WithSignInNotifier(n notifier.Notifier) SignInOption {
	return func(s *SignInService) {
		s.notifier = n
	}
}

// NewSignInService creates a sign-in service over the shared state container
// and redirect router. Notifications are discarded unless a notifier is
// provided.
func NewSignInService(backend Backend, state *State, router *Router, opts ...SignInOption) *SignInService {
	s := &SignInService{
		backend: backend,
		state:   state,
		router:  router,
		notifier: notifier.Func(func(context.Context, notifier.Notification) error {
			return nil
		}),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn attempts an interactive sign-in with the given provider.
//
// The boolean result tells the calling UI whether the user ended up signed
// in; false with a nil error means the failure was handled here (conflict
// parked or notification sent) and the caller decides whether to retry. A
// non-nil error is a transport-level fault the caller must handle itself.
func (s *SignInService) SignIn(ctx context.Context, prov *provider.Provider) (bool, error) {
	principal, err := s.backend.SignIn(ctx, prov)
	if err != nil {
		return false, s.handleFailure(ctx, prov, err)
	}

	s.logger.InfoContext(ctx, "sign-in succeeded",
		logger.Component("signin"),
		logger.Provider(prov.ID()),
		logger.UserID(principal.UID),
	)

	s.completePendingLink(ctx, principal)
	s.route(ctx, principal)
	return true, nil
}

// CancelPendingLink abandons conflict recovery, resetting every pending-link
// field. The current principal, if any, is unaffected. Returns
// ErrNoPendingLink when no conflict is pending.
func (s *SignInService) CancelPendingLink() error {
	if !s.state.PendingLink().Active {
		return ErrNoPendingLink
	}
	s.state.ClearPendingLink()
	return nil
}

// handleFailure converts typed sign-in failures into state or notifications.
// Only transport-level faults are returned to the caller.
func (s *SignInService) handleFailure(ctx context.Context, prov *provider.Provider, err error) error {
	var sie *SignInError
	if !errors.As(err, &sie) {
		return fmt.Errorf("sign-in with %s: %w", prov.ID(), err)
	}

	if sie.IsConflict() {
		msg := fmt.Sprintf(
			"An account already exists for %s under a different sign-in method. Sign in with your original method to link them.",
			sie.Email,
		)
		s.state.SetPendingLink(PendingLink{
			Active:     true,
			Credential: sie.Pending,
			Provider:   prov.ID(),
			Email:      sie.Email,
			Message:    msg,
		})
		s.logger.WarnContext(ctx, "credential conflict, pending link stored",
			logger.Component("signin"),
			logger.Provider(prov.ID()),
			slog.String("email", sie.Email),
		)
		s.notify(ctx, notifier.TypeWarning, msg)
		return nil
	}

	s.logger.WarnContext(ctx, "sign-in failed",
		logger.Component("signin"),
		logger.Provider(prov.ID()),
		slog.String("code", sie.Code),
	)
	s.notify(ctx, notifier.TypeError, "Sign-in failed. Please try again.")
	return nil
}

// completePendingLink attaches a previously parked credential to the freshly
// authenticated principal. A linking failure keeps the pending state so the
// user can retry; success clears it and confirms.
func (s *SignInService) completePendingLink(ctx context.Context, principal *Principal) {
	pl := s.state.PendingLink()
	if !pl.Active || pl.Credential == nil {
		return
	}

	if _, err := s.backend.LinkCredential(ctx, principal, *pl.Credential); err != nil {
		s.logger.ErrorContext(ctx, "credential linking failed",
			logger.Component("signin"),
			logger.Provider(pl.Provider),
			logger.UserID(principal.UID),
			logger.Error(err),
		)
		s.notify(ctx, notifier.TypeError, "Could not link your sign-in methods. Please try again.")
		return
	}

	s.state.ClearPendingLink()
	s.logger.InfoContext(ctx, "credential linked",
		logger.Component("signin"),
		logger.Provider(pl.Provider),
		logger.UserID(principal.UID),
	)
	s.notify(ctx, notifier.TypeSuccess, "Your sign-in methods are now linked.")
}

// route resolves fresh claims for the principal and hands them to the
// redirect router. Routing problems never fail the sign-in: the user is
// authenticated either way.
func (s *SignInService) route(ctx context.Context, principal *Principal) {
	var claims *Claims
	token, err := s.backend.IssueToken(ctx, principal, true)
	if err == nil {
		claims, err = DecodeClaims(token)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "claims unavailable for routing",
			logger.Component("signin"),
			logger.UserID(principal.UID),
			logger.Error(err),
		)
		claims = nil
	}

	if _, err := s.router.Route(ctx, claims); err != nil {
		s.logger.ErrorContext(ctx, "post-sign-in navigation failed",
			logger.Component("signin"),
			logger.UserID(principal.UID),
			logger.Error(err),
		)
	}
}

func (s *SignInService) notify(ctx context.Context, typ notifier.Type, msg string) {
	if err := s.notifier.Notify(ctx, notifier.New(typ, msg)); err != nil {
		s.logger.WarnContext(ctx, "notification delivery failed", logger.Component("signin"), logger.Error(err))
	}
}
