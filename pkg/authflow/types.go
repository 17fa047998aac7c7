package authflow

import (
	"fmt"

	"github.com/dmitrymomot/authflow/pkg/provider"
)

// AccountType distinguishes the two profile topologies.
type AccountType string

const (
	AccountTypeCandidate AccountType = "candidate"
	AccountTypeCompany   AccountType = "company"
)

// RoleAdmin is the only role with a dedicated landing destination.
const RoleAdmin = "admin"

// Principal is the authenticated identity handle for the current session,
// issued by the backend on successful sign-in or session restoration.
// A nil *Principal means signed out.
type Principal struct {
	UID         string
	Email       string
	Credentials []provider.Credential
}

// Claims are the authorization attributes decoded from the backend-issued
// identity token. Claims are a pure function of the current Principal's
// token and must never be cached across Principal changes.
type Claims struct {
	Subject     string
	Role        string
	AccountType AccountType
	CompanyID   string
}

// ProfilePath returns the document path of the profile record this claims
// set points at: company accounts live under their company document, every
// other account under the top-level users collection.
func (c *Claims) ProfilePath() string {
	if c.AccountType == AccountTypeCompany && c.CompanyID != "" {
		return fmt.Sprintf("companies/%s/users/%s", c.CompanyID, c.Subject)
	}
	return fmt.Sprintf("users/%s", c.Subject)
}

// ProfileRecord is the persisted domain profile loaded for the current
// claims. Fields carries the raw document fields.
type ProfileRecord struct {
	ID          string
	AccountType AccountType
	Fields      map[string]any
}

// PendingLink captures a credential waiting to be attached to a principal:
// the sign-in attempt that produced it failed because the email was already
// registered under a different provider. It lives only between that failure
// and a completed linking, an explicit cancel, or process exit.
type PendingLink struct {
	Active     bool
	Credential *provider.Credential
	Provider   string
	Email      string
	Message    string
}
