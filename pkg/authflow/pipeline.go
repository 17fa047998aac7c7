package authflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/authflow/pkg/docstore"
	"github.com/dmitrymomot/authflow/pkg/logger"
)

// Pipeline connects the backend session stream to the state container:
// every principal emission is committed, claims are resolved from a fresh
// identity token, and the matching profile record is loaded from the
// document store. Each derived stage tags its work with the generation it
// started from, so a newer emission supersedes the write effect of any
// still-in-flight older computation.
type Pipeline struct {
	backend Backend
	state   *State
	docs    docstore.Reader
	logger  *slog.Logger

	wg sync.WaitGroup
}

// PipelineOption configures a Pipeline during construction.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets a custom logger for the pipeline stages.
func WithPipelineLogger(log *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = log
	}
}

// NewPipeline creates a session resolution pipeline. The state container is
// injected so the same instance can be shared with the sign-in service and
// the UI layer.
func NewPipeline(backend Backend, state *State, docs docstore.Reader, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		backend: backend,
		state:   state,
		docs:    docs,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run consumes the backend session stream until ctx is cancelled or the
// stream closes, then waits for in-flight resolutions to finish. No state
// is written after Run returns. Run is the session observer stage; claims
// resolution and profile loading are spawned per emission.
func (p *Pipeline) Run(ctx context.Context) error {
	defer p.wg.Wait()

	changes := p.backend.SessionChanges(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case principal, ok := <-changes:
			if !ok {
				return nil
			}
			p.observe(ctx, principal)
		}
	}
}

// observe commits the principal emission and kicks off claims resolution.
// The signed-out path is fully synchronous: no network call is needed to
// know the claims are gone.
func (p *Pipeline) observe(ctx context.Context, principal *Principal) {
	gen := p.state.SetPrincipal(principal)

	if principal == nil {
		if claimsGen, ok := p.state.SetClaims(gen, nil); ok {
			p.state.SetProfile(claimsGen, nil)
		}
		p.logger.DebugContext(ctx, "session cleared", logger.Component("observer"), logger.Generation(gen))
		return
	}

	p.logger.DebugContext(ctx, "session established",
		logger.Component("observer"),
		logger.UserID(principal.UID),
		logger.Generation(gen),
	)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.resolveClaims(ctx, gen, principal)
	}()
}

// resolveClaims fetches a fresh identity token for the principal and commits
// the decoded claims. A token fetch or decode failure commits nil claims;
// the failure is logged, not retried.
func (p *Pipeline) resolveClaims(ctx context.Context, principalGen uint64, principal *Principal) {
	var claims *Claims

	// forceRefresh guarantees the token belongs to this principal, never a
	// cached token from a predecessor.
	token, err := p.backend.IssueToken(ctx, principal, true)
	if err != nil {
		p.logger.ErrorContext(ctx, "identity token fetch failed",
			logger.Component("claims"),
			logger.UserID(principal.UID),
			logger.Error(err),
		)
	} else if claims, err = DecodeClaims(token); err != nil {
		p.logger.ErrorContext(ctx, "identity token decode failed",
			logger.Component("claims"),
			logger.UserID(principal.UID),
			logger.Error(err),
		)
		claims = nil
	}

	if ctx.Err() != nil {
		return
	}

	claimsGen, ok := p.state.SetClaims(principalGen, claims)
	if !ok {
		p.logger.DebugContext(ctx, "stale claims resolution dropped",
			logger.Component("claims"),
			logger.Generation(principalGen),
		)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.loadProfile(ctx, claimsGen, claims)
	}()
}

// loadProfile performs the single read of the profile path determined by the
// claims and commits the result. The commit is generation-guarded: only the
// load started by the latest claims value may write the profile.
func (p *Pipeline) loadProfile(ctx context.Context, claimsGen uint64, claims *Claims) {
	if claims == nil {
		p.state.SetProfile(claimsGen, nil)
		return
	}

	path := claims.ProfilePath()

	var record *ProfileRecord
	doc, err := p.docs.Read(ctx, path)
	switch {
	case err == nil:
		record = &ProfileRecord{
			ID:          doc.ID,
			AccountType: claims.AccountType,
			Fields:      doc.Fields,
		}
	case errors.Is(err, docstore.ErrNotFound):
		p.logger.WarnContext(ctx, "profile record missing",
			logger.Component("profile"),
			logger.Path(path),
		)
	default:
		p.logger.ErrorContext(ctx, "profile load failed",
			logger.Component("profile"),
			logger.Path(path),
			logger.Error(err),
		)
	}

	if ctx.Err() != nil {
		return
	}

	if !p.state.SetProfile(claimsGen, record) {
		p.logger.DebugContext(ctx, "stale profile load dropped",
			logger.Component("profile"),
			logger.Path(path),
			logger.Generation(claimsGen),
		)
	}
}
