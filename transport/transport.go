package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	goReauth "github.com/MrEthical07/goReauth"
	"github.com/MrEthical07/goReauth/middleware"
)

// Non-2xx error bodies are retained up to this bound so StatusError stays
// cheap to carry around.
const maxErrorBodyBytes = 64 << 10

// StatusError is the non-2xx-to-error translation produced by transports
// built with [New]. Classifiers unwrap it with errors.As.
type StatusError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

// Error describes the error operation and its observable behavior.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// New builds a goReauth.Transport on top of client. Each call constructs the
// request from the options, applies the middleware chain, issues the call,
// and returns the response. Responses outside 2xx come back together with a
// [*StatusError]; their body is drained (bounded) and replaced so the caller
// can still read it.
//
// A nil client uses a zero-value http.Client. The options body is a byte
// slice, so the transport is safely re-invocable with identical arguments —
// which is exactly what the client's single authorized retry does.
func New(client *http.Client, mw ...middleware.Middleware) goReauth.Transport {
	if client == nil {
		client = &http.Client{}
	}

	return func(ctx context.Context, url string, opts goReauth.RequestOptions) (*http.Response, error) {
		method := opts.Method
		if method == "" {
			method = http.MethodGet
		}

		var body io.Reader
		if len(opts.Body) > 0 {
			body = bytes.NewReader(opts.Body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, err
		}

		for key, values := range opts.Header {
			req.Header[key] = append([]string(nil), values...)
		}

		if err := middleware.Apply(req, mw...); err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(payload))

		return resp, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     method,
			URL:        url,
			Body:       payload,
		}
	}
}
