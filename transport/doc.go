// Package transport implements the HTTP collaborator boundary of the
// re-authentication client: building a goReauth.Transport from an
// *http.Client and translating non-2xx responses into errors the classify
// package can inspect.
//
// # Components
//
//   - [New] — builds a goReauth.Transport that applies a middleware chain,
//     issues the call, and converts non-2xx status codes into [*StatusError].
//   - [StatusError] — the non-2xx-to-error translation; carries status code,
//     method, URL, and a bounded copy of the response body.
//   - [RoundTripper] — adapts a *goReauth.Client back into an
//     http.RoundTripper so the wrapped transport slots into any http.Client.
//
// # Architecture boundaries
//
// This package owns HTTP mechanics. It does NOT decide which failures are
// auth-classified (classify package) or when to re-authenticate (root
// package).
package transport
