package goReauth

import (
	"context"
	"net/http"
)

// RequestOptions carries the recognized per-call options for a [Transport]
// invocation. The body is a byte slice rather than a reader so that the single
// authorized retry can re-issue the call with byte-identical arguments.
//
// RequestOptions instances are intended to be configured per call and then treated as immutable unless documented otherwise.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   []byte
}

// Transport is the wrapped HTTP capability. It either returns a success value
// or an error; a transport that has already translated non-2xx responses into
// errors (see the transport package) may return both a response and an error,
// and the Client passes both through unchanged.
//
// [Client.Transport] returns a value of this exact type, so the wrapped client
// is a drop-in replacement for the raw capability anywhere it is used.
type Transport func(ctx context.Context, url string, opts RequestOptions) (*http.Response, error)

// Classifier reports whether a transport failure should trigger
// re-authentication. It must be a pure predicate: no side effects, no panics,
// deterministic for a given error value. Stock classifiers live in the
// classify package.
type Classifier func(err error) bool

// Reauthenticator performs the external credential refresh. It takes no input
// and has no meaningful output besides success or failure; its effect is
// external, typically updating a credential store consulted by the transport
// on the next call. The Client guarantees it is invoked at most once per
// re-authentication episode regardless of concurrent demand.
type Reauthenticator func(ctx context.Context) error
