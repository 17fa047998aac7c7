package provider

import "time"

// Credential is a provider-issued credential: the proof of a completed (or
// attempted) provider authentication. When a sign-in attempt fails because
// the email is already registered under a different provider, the credential
// is held as the pending credential to be linked after re-authentication.
type Credential struct {
	Provider    string    // provider identifier, e.g. "google.com"
	SubjectID   string    // provider-specific subject id
	AccessToken string
	IDToken     string
	ObtainedAt  time.Time
}

// Valid reports whether the credential carries enough data to be linked.
func (c Credential) Valid() bool {
	return c.Provider != "" && (c.AccessToken != "" || c.IDToken != "")
}
