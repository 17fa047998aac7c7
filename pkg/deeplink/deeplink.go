package deeplink

import "context"

// Store holds at most one deep-link target: the path the user originally
// asked for before being sent through sign-in. The target is written by the
// navigation layer and consumed at most once per successful sign-in.
type Store interface {
	// Set stores the deep-link target, replacing any previous one.
	Set(ctx context.Context, target string) error

	// Take returns the stored target and clears it atomically.
	// Returns an empty string when nothing is stored.
	Take(ctx context.Context) (string, error)
}
