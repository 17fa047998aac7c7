// Package broadcast provides a minimal generic publish/subscribe primitive
// for fanning state changes out to in-process observers.
//
// The in-memory implementation favors publisher liveness: a subscriber that
// cannot keep up is detached rather than allowed to block everyone else.
// Subscriptions are bound to a context and torn down on cancellation.
package broadcast
