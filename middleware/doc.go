// Package middleware decorates outgoing requests built by the transport
// package: header injection, user-agent stamping, and bearer-token
// attachment from a token.Source.
//
// # Decorators
//
//   - [WithBearer] — attaches "Authorization: Bearer <token>" from a source;
//     a missing token is not an error, the request goes out unauthenticated
//     so the server's rejection can trigger re-authentication.
//   - [WithHeader] / [WithUserAgent] / [WithContentType] — static header
//     injection.
//
// # Architecture boundaries
//
// This package mutates *http.Request before it leaves the process. It does
// NOT classify failures, trigger refreshes, or read responses — that belongs
// to the root package and the classify package.
package middleware
