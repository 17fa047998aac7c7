package authflow

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeClaims(t *testing.T) {
	t.Parallel()

	t.Run("candidate claims", func(t *testing.T) {
		t.Parallel()

		token := signedToken(t, jwt.MapClaims{
			"sub":         "u2",
			"accountType": "candidate",
		})

		claims, err := DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "u2", claims.Subject)
		assert.Equal(t, AccountTypeCandidate, claims.AccountType)
		assert.Empty(t, claims.Role)
		assert.Empty(t, claims.CompanyID)
	})

	t.Run("company claims with tenant", func(t *testing.T) {
		t.Parallel()

		token := signedToken(t, jwt.MapClaims{
			"sub":         "u1",
			"accountType": "company",
			"companyId":   "c1",
		})

		claims, err := DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, AccountTypeCompany, claims.AccountType)
		assert.Equal(t, "c1", claims.CompanyID)
	})

	t.Run("admin role", func(t *testing.T) {
		t.Parallel()

		token := signedToken(t, jwt.MapClaims{"sub": "u3", "role": "admin"})

		claims, err := DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		token := signedToken(t, jwt.MapClaims{"role": "admin"})

		_, err := DecodeClaims(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeClaims("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_ProfilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{
			name:   "candidate reads top-level users",
			claims: Claims{Subject: "U2", AccountType: AccountTypeCandidate},
			want:   "users/U2",
		},
		{
			name:   "company reads nested company users",
			claims: Claims{Subject: "U1", AccountType: AccountTypeCompany, CompanyID: "C1"},
			want:   "companies/C1/users/U1",
		},
		{
			name:   "company without tenant falls back to users",
			claims: Claims{Subject: "U3", AccountType: AccountTypeCompany},
			want:   "users/U3",
		},
		{
			name:   "no account type",
			claims: Claims{Subject: "U4"},
			want:   "users/U4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.claims.ProfilePath())
		})
	}
}
