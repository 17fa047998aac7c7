// Package deeplink stores the single post-sign-in redirect target.
//
// When an unauthenticated user hits a protected path, the navigation layer
// records that path here before redirecting to sign-in. After a successful
// sign-in the stored target is consumed exactly once and wins over any
// role-based landing destination.
package deeplink
