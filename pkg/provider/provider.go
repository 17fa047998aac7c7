package provider

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"
)

// Canonical provider identifiers. The values follow the identity backend's
// naming so they can be compared against credential and token payloads
// without translation.
const (
	IDGoogle   = "google.com"
	IDGitHub   = "github.com"
	IDPassword = "password"
)

// Provider describes a federated sign-in provider: a stable identifier plus
// the OAuth2 configuration needed to start an authorization flow.
type Provider struct {
	id   string
	conf *oauth2.Config
}

// ID returns the provider identifier (e.g. "google.com").
func (p *Provider) ID() string {
	return p.id
}

// AuthURL builds the provider authorization URL for the given state token.
func (p *Provider) AuthURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// OAuth2 exposes the underlying OAuth2 configuration for code exchange.
func (p *Provider) OAuth2() *oauth2.Config {
	return p.conf
}

// GenerateState returns a cryptographically random, URL-safe state token for
// CSRF protection of the authorization flow.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
