// Package flight implements the single-slot single-flight primitive behind
// the re-authentication client.
//
// # Components
//
//   - [Gate] — coalesces concurrent demand for one operation into a single
//     execution; the check for an in-flight episode and the installation of a
//     new one happen under one lock acquisition.
//   - [Episode] — one pending-or-settled execution shared by every caller that
//     observed it while in flight.
//
// # Architecture boundaries
//
// This package owns the exactly-once and clear-before-resume guarantees. It
// does NOT know what the operation is, classify failures, or decide retry
// policy — all of that belongs to the root package.
package flight
