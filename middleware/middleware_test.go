package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrEthical07/goReauth/token"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "https://api.example.com/v1/data", nil)
}

func TestApplyOrderAndErrorStop(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	req := newRequest(t)
	err := Apply(req,
		func(*http.Request) error { order = append(order, "a"); return nil },
		nil,
		func(*http.Request) error { order = append(order, "b"); return boom },
		func(*http.Request) error { order = append(order, "c"); return nil },
	)

	if !errors.Is(err, boom) {
		t.Fatalf("expected first middleware error, got %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected execution order %v", order)
	}
}

func TestHeaderDecorators(t *testing.T) {
	req := newRequest(t)
	err := Apply(req,
		WithHeader("X-Trace", "abc"),
		WithUserAgent("goreauth-test/1.0"),
		WithContentType("application/json"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("X-Trace"); got != "abc" {
		t.Fatalf("X-Trace = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != "goreauth-test/1.0" {
		t.Fatalf("User-Agent = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestWithBearerAttachesToken(t *testing.T) {
	store := token.NewMemoryStore()
	if err := store.Set(context.Background(), "abc123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	req := newRequest(t)
	if err := Apply(req, WithBearer(store)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer abc123" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestWithBearerMissingTokenSendsUnauthenticated(t *testing.T) {
	req := newRequest(t)
	if err := Apply(req, WithBearer(token.NewMemoryStore())); err != nil {
		t.Fatalf("a missing token must not abort the request, got %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
}

type failingSource struct{ err error }

func (s failingSource) Token(context.Context) (string, error) { return "", s.err }

func TestWithBearerSourceErrorAborts(t *testing.T) {
	boom := errors.New("redis unavailable")
	req := newRequest(t)
	if err := Apply(req, WithBearer(failingSource{err: boom})); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestWithBearerNilSource(t *testing.T) {
	req := newRequest(t)
	if err := Apply(req, WithBearer(nil)); err != nil {
		t.Fatalf("nil source must be a no-op, got %v", err)
	}
}
