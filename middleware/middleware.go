package middleware

import "net/http"

// Middleware is a request pre-processing hook applied by the transport
// package before a request leaves the process.
type Middleware func(req *http.Request) error

// Apply runs the decorators in order, stopping at the first error.
func Apply(req *http.Request, mw ...Middleware) error {
	for _, m := range mw {
		if m == nil {
			continue
		}
		if err := m(req); err != nil {
			return err
		}
	}
	return nil
}

// WithHeader sets a static request header.
func WithHeader(key, value string) Middleware {
	return func(req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Middleware {
	return WithHeader("User-Agent", ua)
}

// WithContentType sets the Content-Type header.
func WithContentType(ct string) Middleware {
	return WithHeader("Content-Type", ct)
}
