package goReauth

import (
	"context"
	"net/http"
	"time"

	"github.com/MrEthical07/goReauth/internal/flight"
	"github.com/google/uuid"
)

// Client defines a public type used by goReauth APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The only mutable coordination state a Client owns is the pending
// re-authentication episode inside its flight gate: absent, or one in-flight
// execution of the supplied [Reauthenticator]. It is installed by an atomic
// check-and-set when an auth-classified failure finds no episode in flight,
// and cleared unconditionally the instant that execution settles, before any
// dependent retry is attempted.
type Client struct {
	config    Config
	transport Transport
	classify  Classifier
	reauth    Reauthenticator
	gate      flight.Gate
	audit     *auditDispatcher
	metrics   *Metrics
}

// Do issues the wrapped transport call with single-flight re-authentication
// retry semantics.
//
// On success the transport outcome passes through unchanged. On failure the
// classifier decides: non-auth failures propagate immediately and unmodified;
// an auth-classified failure joins or creates the shared re-authentication
// episode, then either retries the call exactly once (episode succeeded,
// retry outcome is final even if it fails) or surfaces the original transport
// failure (episode failed — the caller sees why its request failed, never why
// the refresh failed).
//
// A call that begins while an episode is already in flight waits it out and
// then issues exactly one transport call, returning that call's outcome as-is
// regardless of how the episode settled; it is not re-classified or retried.
func (c *Client) Do(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
	if c == nil || c.transport == nil {
		return nil, ErrClientNotReady
	}

	resp, err := c.do(ctx, url, opts)
	if err == nil {
		c.metrics.Inc(MetricCallSuccess)
	}
	return resp, err
}

// Transport returns Do as a [Transport], making the Client a drop-in
// replacement for the raw capability it wraps.
func (c *Client) Transport() Transport {
	return c.Do
}

func (c *Client) do(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
	if ep, ok := c.gate.Pending(); ok {
		// Bystander: the episode outcome is deliberately ignored. This caller
		// surfaces whatever its own transport call yields, never the refresh
		// failure of an episode it did not trigger.
		_ = ep.Wait()
		c.metrics.Inc(MetricBystanderReplay)
		c.emit(ctx, AuditEvent{
			EventType: AuditBystanderReplay,
			Method:    opts.Method,
			URL:       url,
			Success:   true,
		})
		return c.roundTrip(ctx, url, opts)
	}

	resp, err := c.roundTrip(ctx, url, opts)
	if err == nil {
		return resp, nil
	}

	if !c.classify(err) {
		c.metrics.Inc(MetricNonAuthFailure)
		return resp, err
	}
	c.metrics.Inc(MetricAuthFailure)

	episodeErr, ran := c.gate.Do(func() error {
		return c.runEpisode(ctx, url, opts)
	})
	if !ran {
		c.metrics.Inc(MetricEpisodeCoalesced)
	}

	if episodeErr != nil {
		c.metrics.Inc(MetricOriginalErrorSurfaced)
		c.emit(ctx, AuditEvent{
			EventType: AuditOriginalErrorSurfaced,
			Method:    opts.Method,
			URL:       url,
			Error:     err.Error(),
		})
		return resp, err
	}

	c.metrics.Inc(MetricTransportRetry)
	c.emit(ctx, AuditEvent{
		EventType: AuditRetryIssued,
		Method:    opts.Method,
		URL:       url,
		Success:   true,
	})
	return c.roundTrip(ctx, url, opts)
}

// runEpisode executes the re-authentication routine once on behalf of every
// caller coalesced onto the episode. It runs on the triggering caller's
// goroutine and context.
func (c *Client) runEpisode(ctx context.Context, url string, opts RequestOptions) error {
	episodeID := uuid.NewString()
	c.metrics.Inc(MetricReauthStarted)
	c.emit(ctx, AuditEvent{
		EventType: AuditReauthStarted,
		EpisodeID: episodeID,
		Method:    opts.Method,
		URL:       url,
		Success:   true,
	})

	start := time.Now()
	err := c.reauth(ctx)
	c.metrics.Observe(MetricReauthLatency, time.Since(start))

	if err != nil {
		c.metrics.Inc(MetricReauthFailure)
		c.emit(ctx, AuditEvent{
			EventType: AuditReauthFailed,
			EpisodeID: episodeID,
			Error:     err.Error(),
		})
		return err
	}

	c.metrics.Inc(MetricReauthSuccess)
	c.emit(ctx, AuditEvent{
		EventType: AuditReauthSucceeded,
		EpisodeID: episodeID,
		Success:   true,
	})
	return nil
}

func (c *Client) roundTrip(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
	c.metrics.Inc(MetricTransportCall)
	return c.transport(ctx, url, opts)
}

func (c *Client) emit(ctx context.Context, event AuditEvent) {
	if c.audit == nil {
		return
	}
	event.Timestamp = time.Now()
	if event.RequestID == "" {
		event.RequestID = requestIDFromContext(ctx)
	}
	c.audit.Emit(ctx, event)
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}
