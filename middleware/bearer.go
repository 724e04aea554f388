package middleware

import (
	"errors"
	"net/http"

	"github.com/MrEthical07/goReauth/token"
)

// WithBearer attaches the current credential from src as a Bearer
// Authorization header. When the source has no credential yet the request is
// sent without the header: the server's auth-classified rejection is what
// triggers the first re-authentication. Any other source error aborts the
// request before it is sent.
func WithBearer(src token.Source) Middleware {
	return func(req *http.Request) error {
		if src == nil {
			return nil
		}

		tok, err := src.Token(req.Context())
		if errors.Is(err, token.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		req.Header.Set("Authorization", "Bearer "+tok)
		return nil
	}
}
