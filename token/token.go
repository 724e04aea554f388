package token

import (
	"context"
	"errors"
)

// ErrNotFound is an exported constant or variable used by the re-authentication client.
var ErrNotFound = errors.New("token not found")

// ErrTokenExpired is an exported constant or variable used by the re-authentication client.
var ErrTokenExpired = errors.New("token already expired")

// Source yields the current credential. Implementations return [ErrNotFound]
// when no credential has been stored yet; middleware treats that as
// "send the request unauthenticated" so that the server's rejection can
// trigger re-authentication.
type Source interface {
	Token(ctx context.Context) (string, error)
}

// Store is a Source that reauthenticators write to.
type Store interface {
	Source
	Set(ctx context.Context, raw string) error
	Invalidate(ctx context.Context) error
}
