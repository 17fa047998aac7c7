package authflow

import (
	"context"
	"sync"

	"github.com/dmitrymomot/authflow/pkg/broadcast"
)

// Snapshot is a coherent copy of the session state at one point in time.
type Snapshot struct {
	Principal *Principal
	LoggedIn  bool
	Claims    *Claims
	Profile   *ProfileRecord
	Pending   PendingLink
}

// State is the process-wide session state container. It is the only mutable
// resource the pipeline stages share: each stage writes its own field group
// in a single commit, and derived writes are guarded by generation counters
// so a stale in-flight computation can never overwrite a newer result.
//
// The pending-link state lives here rather than in any request scope because
// conflict recovery must survive a full navigation to another sign-in
// surface and back.
type State struct {
	mu sync.RWMutex

	principal *Principal
	claims    *Claims
	profile   *ProfileRecord
	pending   PendingLink

	// principalGen increments on every principal commit; claimsGen on every
	// claims commit. Derived stages present the generation they started
	// from, and the commit is dropped when a newer generation exists.
	principalGen uint64
	claimsGen    uint64

	watchers *broadcast.Memory[Snapshot]
}

// NewState creates an empty session state container.
func NewState() *State {
	return &State{
		watchers: broadcast.NewMemory[Snapshot](16),
	}
}

// Principal returns the current authenticated principal, or nil.
func (s *State) Principal() *Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// LoggedIn reports whether a principal is currently signed in.
func (s *State) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// Claims returns the current claims, or nil.
func (s *State) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// Profile returns the current profile record, or nil.
func (s *State) Profile() *ProfileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// PendingLink returns the current pending-link state.
func (s *State) PendingLink() PendingLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Snapshot returns a coherent copy of the full session state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetPrincipal commits a new principal emission and returns its generation.
// Claims and profile are derived values of the principal, so both are reset
// in the same commit; the downstream stages repopulate them for the new
// generation.
func (s *State) SetPrincipal(p *Principal) uint64 {
	s.mu.Lock()
	s.principalGen++
	gen := s.principalGen
	s.principal = p
	s.claims = nil
	s.profile = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return gen
}

// SetClaims commits claims resolved for the given principal generation.
// The commit is dropped when a newer principal has been committed since the
// resolution started. On success it returns the new claims generation.
func (s *State) SetClaims(principalGen uint64, c *Claims) (uint64, bool) {
	s.mu.Lock()
	if principalGen != s.principalGen {
		s.mu.Unlock()
		return 0, false
	}
	s.claimsGen++
	gen := s.claimsGen
	s.claims = c
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return gen, true
}

// SetProfile commits a profile loaded for the given claims generation.
// The commit is dropped when newer claims have been committed since the
// load started, so a slow earlier lookup can never overwrite fresher data.
func (s *State) SetProfile(claimsGen uint64, rec *ProfileRecord) bool {
	s.mu.Lock()
	if claimsGen != s.claimsGen {
		s.mu.Unlock()
		return false
	}
	s.profile = rec
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return true
}

// SetPendingLink stores the pending-link state produced by a credential
// conflict.
func (s *State) SetPendingLink(pl PendingLink) {
	s.mu.Lock()
	s.pending = pl
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// ClearPendingLink resets every pending-link field. The current principal is
// unaffected.
func (s *State) ClearPendingLink() {
	s.SetPendingLink(PendingLink{})
}

// Watch subscribes to state commits. Every commit publishes one coherent
// snapshot. The subscription is torn down when ctx is cancelled.
func (s *State) Watch(ctx context.Context) broadcast.Subscriber[Snapshot] {
	return s.watchers.Subscribe(ctx)
}

// Close shuts down the watcher broadcaster.
func (s *State) Close() error {
	return s.watchers.Close()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Principal: s.principal,
		LoggedIn:  s.principal != nil,
		Claims:    s.claims,
		Profile:   s.profile,
		Pending:   s.pending,
	}
}

func (s *State) publish(snap Snapshot) {
	_ = s.watchers.Publish(context.Background(), snap)
}
