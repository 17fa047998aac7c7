// Package provider describes federated sign-in providers and the credentials
// they issue.
//
// A Provider pairs a stable identifier with the OAuth2 configuration needed
// to start an authorization flow. A Credential is the provider-issued proof
// of authentication; it is what gets held as a pending credential when a
// sign-in attempt conflicts with an existing account and later linked once
// the user re-authenticates with their original provider.
package provider
