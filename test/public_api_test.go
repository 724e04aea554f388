package test

import (
	"context"
	"net/http"
	"testing"

	goReauth "github.com/MrEthical07/goReauth"
	"github.com/MrEthical07/goReauth/classify"
	"github.com/MrEthical07/goReauth/middleware"
	"github.com/MrEthical07/goReauth/token"
	"github.com/MrEthical07/goReauth/transport"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goReauth.New

	var _ *goReauth.Client
	var _ goReauth.Config
	var _ goReauth.RequestOptions
	var _ goReauth.Transport
	var _ goReauth.Classifier
	var _ goReauth.Reauthenticator
	var _ goReauth.AuditSink
	var _ goReauth.AuditEvent
	var _ goReauth.MetricsSnapshot

	var _ error = goReauth.ErrTransportRequired
	var _ error = goReauth.ErrClassifierRequired
	var _ error = goReauth.ErrReauthenticatorRequired
	var _ error = goReauth.ErrClientNotReady

	var _ func(codes ...int) goReauth.Classifier = classify.OnStatus
	var _ func() goReauth.Classifier = classify.OnUnauthorized
	var _ func(fns ...goReauth.Classifier) goReauth.Classifier = classify.Any

	var _ func(token.Source) middleware.Middleware = middleware.WithBearer
	var _ func(string, string) middleware.Middleware = middleware.WithHeader

	var _ func(*http.Client, ...middleware.Middleware) goReauth.Transport = transport.New

	var _ func(*goReauth.Client, context.Context, string, goReauth.RequestOptions) (*http.Response, error) = (*goReauth.Client).Do
	var _ func(*goReauth.Client) goReauth.Transport = (*goReauth.Client).Transport
	var _ func(*goReauth.Client) goReauth.MetricsSnapshot = (*goReauth.Client).MetricsSnapshot
	var _ func(*goReauth.Client) = (*goReauth.Client).Close
}
