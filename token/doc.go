// Package token provides credential storage collaborators for the
// re-authentication client: a [Source] consulted by outgoing-request
// middleware and a [Store] written by reauthenticators.
//
// # Components
//
//   - [Source] / [Store] — read and read-write credential access.
//   - [MemoryStore] — process-local store for single-binary deployments.
//   - [RedisStore] — Redis-backed store so that every process sharing the
//     Redis instance observes one credential; its TTL is derived from the JWT
//     exp claim when the stored value is a JWT.
//
// # Architecture boundaries
//
// This package owns credential persistence. It does NOT decide when to
// refresh — the root package's Client triggers refreshes reactively, and this
// package never schedules one. It inspects the token only to derive a storage
// TTL, never to validate it.
package token
