// Package classify ships stock auth-failure classifiers for the
// re-authentication client.
//
// Every classifier here is a pure predicate over an error value: no side
// effects, no panics, deterministic. They inspect transport.StatusError via
// errors.As, so they compose with any error wrapping the transport applies.
//
// # Architecture boundaries
//
// This package decides only whether a given failure is auth-classified. It
// does NOT trigger re-authentication, retry calls, or inspect responses —
// that belongs to the root package.
package classify
