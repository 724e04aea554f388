// Package goReauth wraps an outgoing HTTP transport with transparent recovery
// from authentication-expiry failures: when a call fails with an auth-classified
// error, the client triggers the caller-supplied re-authentication routine and
// retries the original call exactly once, while guaranteeing that any number of
// concurrently failing calls coalesce onto a single in-flight re-authentication.
//
// The package is designed for concurrent client workloads: Client methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goReauth is the public surface. It exposes [Client], [Builder], [Config], the
// capability types ([Transport], [Classifier], [Reauthenticator]), and value
// types (MetricsSnapshot, AuditEvent, RequestOptions). The single-flight
// coordination primitive lives under internal/ and is never exported. Concrete
// transports, failure classifiers, and credential stores are collaborator
// packages (transport, classify, token, middleware) layered on top of the core.
//
// # What this package must NOT do
//
//   - Read, store, or parse the credential itself. The Client only decides when
//     to ask the caller to refresh it; credential handling belongs to the token
//     package and to caller-supplied capabilities.
//   - Queue, batch, or dedupe requests that did not fail auth-classified.
//   - Schedule re-authentication ahead of expiry. Recovery is strictly reactive.
//   - Invent error values on the call path. Every failure surfaced by
//     [Client.Do] originates from the supplied transport.
//
// # Liveness contract
//
// The Client has no notion of deadlines of its own. If the supplied transport
// or re-authentication routine never settles, Client.Do never settles either;
// callers who need timeouts must enforce them inside the capabilities they
// supply (the transport package does so via http.Client and request contexts).
package goReauth
