package authflow

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload shape issued by the backend. Custom claims
// are flat top-level fields next to the registered claim set.
type tokenClaims struct {
	Role        string `json:"role,omitempty"`
	AccountType string `json:"accountType,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts authorization claims from a backend-issued identity
// token. The token arrives over the backend's authenticated channel, so the
// payload is decoded without signature verification; server-side consumers
// of the same token verify it against the backend's keys.
func DecodeClaims(token string) (*Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if tc.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject:     tc.Subject,
		Role:        tc.Role,
		AccountType: AccountType(tc.AccountType),
		CompanyID:   tc.CompanyID,
	}, nil
}
