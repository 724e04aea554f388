// Package internal contains coordination machinery that is intentionally
// private to goReauth.
//
// # Sub-packages
//
//   - flight — the single-slot single-flight primitive (Gate + Episode)
//     behind the exactly-once re-authentication guarantee
package internal
