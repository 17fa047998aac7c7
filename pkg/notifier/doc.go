// Package notifier delivers transient user-facing messages such as sign-in
// failures and account-linking confirmations.
//
// Delivery is best effort by contract: the authentication pipeline fires a
// notification and moves on, so no implementation may block or surface
// delivery failures to the caller. Multi combines channels, Memory records
// for tests, and Slog routes messages to structured logs.
package notifier
