package transport

import (
	"errors"
	"io"
	"net/http"

	goReauth "github.com/MrEthical07/goReauth"
)

// RoundTripper adapts a *goReauth.Client into an http.RoundTripper, so the
// single-flight retry semantics apply to any code that only knows how to
// talk to an http.Client.
type RoundTripper struct {
	client *goReauth.Client
}

// NewRoundTripper describes the newroundtripper operation and its observable behavior.
func NewRoundTripper(c *goReauth.Client) *RoundTripper {
	return &RoundTripper{client: c}
}

// RoundTrip buffers the request body (it must be replayable for the retry),
// delegates to the wrapped client, and maps [*StatusError] back to the
// http.RoundTripper contract, where a non-2xx response is a response, not an
// error.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt == nil || rt.client == nil {
		return nil, goReauth.ErrClientNotReady
	}

	opts := goReauth.RequestOptions{
		Method: req.Method,
		Header: req.Header,
	}

	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		opts.Body = payload
	}

	resp, err := rt.client.Do(req.Context(), req.URL.String(), opts)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && resp != nil {
		return resp, nil
	}
	return resp, err
}
