package authflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authflow/pkg/provider"
)

func TestState_SetPrincipal(t *testing.T) {
	t.Parallel()

	t.Run("commits principal and logged-in flag", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		assert.False(t, s.LoggedIn())

		gen := s.SetPrincipal(&Principal{UID: "u1"})
		assert.Equal(t, uint64(1), gen)
		assert.True(t, s.LoggedIn())
		require.NotNil(t, s.Principal())
		assert.Equal(t, "u1", s.Principal().UID)
	})

	t.Run("resets derived claims and profile", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		gen := s.SetPrincipal(&Principal{UID: "u1"})
		claimsGen, ok := s.SetClaims(gen, &Claims{Subject: "u1"})
		require.True(t, ok)
		require.True(t, s.SetProfile(claimsGen, &ProfileRecord{ID: "u1"}))

		s.SetPrincipal(&Principal{UID: "u2"})
		assert.Nil(t, s.Claims())
		assert.Nil(t, s.Profile())
	})

	t.Run("nil principal forces everything nil", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		gen := s.SetPrincipal(&Principal{UID: "u1"})
		claimsGen, _ := s.SetClaims(gen, &Claims{Subject: "u1"})
		s.SetProfile(claimsGen, &ProfileRecord{ID: "u1"})

		s.SetPrincipal(nil)
		assert.False(t, s.LoggedIn())
		assert.Nil(t, s.Principal())
		assert.Nil(t, s.Claims())
		assert.Nil(t, s.Profile())
	})
}

func TestState_GenerationGuards(t *testing.T) {
	t.Parallel()

	t.Run("stale claims commit is dropped", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		oldGen := s.SetPrincipal(&Principal{UID: "u1"})
		s.SetPrincipal(&Principal{UID: "u2"})

		_, ok := s.SetClaims(oldGen, &Claims{Subject: "u1"})
		assert.False(t, ok)
		assert.Nil(t, s.Claims())
	})

	t.Run("stale profile commit is dropped", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		gen := s.SetPrincipal(&Principal{UID: "u1"})
		oldClaimsGen, ok := s.SetClaims(gen, &Claims{Subject: "u1"})
		require.True(t, ok)

		// A newer claims value commits before the old load finishes.
		newClaimsGen, ok := s.SetClaims(gen, &Claims{Subject: "u1", Role: "admin"})
		require.True(t, ok)
		require.True(t, s.SetProfile(newClaimsGen, &ProfileRecord{ID: "fresh"}))

		assert.False(t, s.SetProfile(oldClaimsGen, &ProfileRecord{ID: "stale"}))
		require.NotNil(t, s.Profile())
		assert.Equal(t, "fresh", s.Profile().ID)
	})
}

func TestState_PendingLink(t *testing.T) {
	t.Parallel()

	t.Run("set and clear", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		cred := &provider.Credential{Provider: provider.IDGoogle, AccessToken: "at"}
		s.SetPendingLink(PendingLink{
			Active:     true,
			Credential: cred,
			Provider:   provider.IDGoogle,
			Email:      "a@b.com",
			Message:    "conflict",
		})

		pl := s.PendingLink()
		assert.True(t, pl.Active)
		assert.Equal(t, cred, pl.Credential)
		assert.Equal(t, "a@b.com", pl.Email)

		s.ClearPendingLink()
		pl = s.PendingLink()
		assert.False(t, pl.Active)
		assert.Nil(t, pl.Credential)
		assert.Empty(t, pl.Provider)
		assert.Empty(t, pl.Email)
		assert.Empty(t, pl.Message)
	})

	t.Run("clearing does not touch principal", func(t *testing.T) {
		t.Parallel()

		s := NewState()
		s.SetPrincipal(&Principal{UID: "u1"})
		s.SetPendingLink(PendingLink{Active: true})
		s.ClearPendingLink()

		require.NotNil(t, s.Principal())
		assert.Equal(t, "u1", s.Principal().UID)
	})
}

func TestState_Watch(t *testing.T) {
	t.Parallel()

	s := NewState()
	defer s.Close()

	sub := s.Watch(context.Background())
	s.SetPrincipal(&Principal{UID: "u1"})

	select {
	case snap := <-sub.Receive():
		assert.True(t, snap.LoggedIn)
		require.NotNil(t, snap.Principal)
		assert.Equal(t, "u1", snap.Principal.UID)
		assert.Nil(t, snap.Claims)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestState_SnapshotIsCoherent(t *testing.T) {
	t.Parallel()

	s := NewState()
	gen := s.SetPrincipal(&Principal{UID: "u1"})
	claimsGen, _ := s.SetClaims(gen, &Claims{Subject: "u1", AccountType: AccountTypeCandidate})
	s.SetProfile(claimsGen, &ProfileRecord{ID: "u1", AccountType: AccountTypeCandidate})

	snap := s.Snapshot()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "u1", snap.Principal.UID)
	assert.Equal(t, "u1", snap.Claims.Subject)
	assert.Equal(t, "u1", snap.Profile.ID)
}
