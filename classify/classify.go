package classify

import (
	"errors"
	"net/http"

	goReauth "github.com/MrEthical07/goReauth"
	"github.com/MrEthical07/goReauth/transport"
)

// OnStatus classifies a failure as auth-related when it carries a
// transport.StatusError with one of the given status codes.
func OnStatus(codes ...int) goReauth.Classifier {
	set := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}

	return func(err error) bool {
		var statusErr *transport.StatusError
		if !errors.As(err, &statusErr) {
			return false
		}
		_, ok := set[statusErr.StatusCode]
		return ok
	}
}

// OnUnauthorized classifies 401 responses as auth failures. This is the
// classifier most deployments want.
func OnUnauthorized() goReauth.Classifier {
	return OnStatus(http.StatusUnauthorized)
}

// Any combines classifiers with OR semantics. Nil entries are skipped.
func Any(classifiers ...goReauth.Classifier) goReauth.Classifier {
	return func(err error) bool {
		for _, c := range classifiers {
			if c == nil {
				continue
			}
			if c(err) {
				return true
			}
		}
		return false
	}
}

// Never classifies nothing as an auth failure, turning the client into a
// pure pass-through wrapper.
func Never() goReauth.Classifier {
	return func(error) bool {
		return false
	}
}
