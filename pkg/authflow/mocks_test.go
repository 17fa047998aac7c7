package authflow

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authflow/pkg/docstore"
	"github.com/dmitrymomot/authflow/pkg/provider"
)

// MockBackend is a testify mock for the Backend interface, used where
// individual calls are asserted (sign-in flows).
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) SessionChanges(ctx context.Context) <-chan *Principal {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(<-chan *Principal)
}

func (m *MockBackend) SignIn(ctx context.Context, p *provider.Provider) (*Principal, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Principal), args.Error(1)
}

func (m *MockBackend) IssueToken(ctx context.Context, principal *Principal, forceRefresh bool) (string, error) {
	args := m.Called(ctx, principal, forceRefresh)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) LinkCredential(ctx context.Context, principal *Principal, cred provider.Credential) (*Principal, error) {
	args := m.Called(ctx, principal, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Principal), args.Error(1)
}

// stubBackend is a channel-driven Backend for pipeline tests: the test emits
// session changes by hand and controls token issuance via a function field.
type stubBackend struct {
	changes chan *Principal

	mu           sync.Mutex
	issueTokenFn func(ctx context.Context, principal *Principal, forceRefresh bool) (string, error)
}

func newStubBackend() *stubBackend {
	return &stubBackend{changes: make(chan *Principal, 8)}
}

func (b *stubBackend) setIssueToken(fn func(ctx context.Context, principal *Principal, forceRefresh bool) (string, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.issueTokenFn = fn
}

func (b *stubBackend) SessionChanges(ctx context.Context) <-chan *Principal {
	return b.changes
}

func (b *stubBackend) SignIn(ctx context.Context, p *provider.Provider) (*Principal, error) {
	return nil, &SignInError{Code: CodeInvalidCredential}
}

func (b *stubBackend) IssueToken(ctx context.Context, principal *Principal, forceRefresh bool) (string, error) {
	b.mu.Lock()
	fn := b.issueTokenFn
	b.mu.Unlock()
	if fn == nil {
		return "", ErrInvalidToken
	}
	return fn(ctx, principal, forceRefresh)
}

func (b *stubBackend) LinkCredential(ctx context.Context, principal *Principal, cred provider.Credential) (*Principal, error) {
	return principal, nil
}

// gatedReader delays reads of selected paths until the test releases them,
// simulating a slow document lookup racing a fresh one.
type gatedReader struct {
	inner docstore.Reader

	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedReader(inner docstore.Reader) *gatedReader {
	return &gatedReader{inner: inner, gates: make(map[string]chan struct{})}
}

// gate makes reads of path block until the returned release function runs.
func (r *gatedReader) gate(path string) (release func()) {
	ch := make(chan struct{})
	r.mu.Lock()
	r.gates[path] = ch
	r.mu.Unlock()
	return sync.OnceFunc(func() { close(ch) })
}

func (r *gatedReader) Read(ctx context.Context, path string) (docstore.Document, error) {
	r.mu.Lock()
	ch := r.gates[path]
	r.mu.Unlock()

	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return docstore.Document{}, ctx.Err()
		}
	}
	return r.inner.Read(ctx, path)
}

// navRecorder records navigations performed by the router.
type navRecorder struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (n *navRecorder) Navigate(_ context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.paths = append(n.paths, path)
	return nil
}

func (n *navRecorder) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.paths))
	copy(out, n.paths)
	return out
}
