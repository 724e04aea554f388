package goReauth

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a caller-chosen correlation ID to ctx. The Client
// copies it into every audit event emitted on behalf of that call, which is
// the only way to tie episode events back to the request that triggered them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
