package goReauth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingSink struct {
	count atomic.Int64
}

func (s *countingSink) Emit(context.Context, AuditEvent) {
	s.count.Add(1)
}

func (s *countingSink) Count() int64 {
	return s.count.Load()
}

type gateSink struct {
	gate chan struct{}
}

func newGateSink() *gateSink {
	return &gateSink{
		gate: make(chan struct{}),
	}
}

func (s *gateSink) Emit(context.Context, AuditEvent) {
	<-s.gate
}

func buildAuditedClient(t *testing.T, sink AuditSink, tr Transport, re Reauthenticator) *Client {
	t.Helper()

	cfg := defaultConfig()
	cfg.Audit = AuditConfig{Enabled: true, BufferSize: 64, DropIfFull: false}

	client, err := New().
		WithConfig(cfg).
		WithTransport(tr).
		WithClassifier(isAuth).
		WithReauthenticator(re).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return client
}

func TestAuditEpisodeEvents(t *testing.T) {
	sink := NewChannelSink(16)

	var calls atomic.Int32
	client := buildAuditedClient(t, sink,
		func(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
			if calls.Add(1) == 1 {
				return nil, errAuth
			}
			return okResponse(), nil
		},
		func(ctx context.Context) error { return nil },
	)

	ctx := WithRequestID(context.Background(), "req-1")
	if _, err := client.Do(ctx, "https://api.example.com", RequestOptions{Method: http.MethodGet}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.Close()

	var types []string
	var episodeID string
	for {
		select {
		case ev := <-sink.Events():
			types = append(types, ev.EventType)
			if ev.EventType == AuditReauthStarted {
				episodeID = ev.EpisodeID
				if ev.RequestID != "req-1" {
					t.Fatalf("request ID not propagated, got %q", ev.RequestID)
				}
			}
			if ev.EventType == AuditReauthSucceeded && ev.EpisodeID != episodeID {
				t.Fatalf("episode events not correlated: %q vs %q", ev.EpisodeID, episodeID)
			}
			continue
		default:
		}
		break
	}

	want := []string{AuditReauthStarted, AuditReauthSucceeded, AuditRetryIssued}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("expected events %v, got %v", want, types)
	}
	if episodeID == "" {
		t.Fatalf("episode ID must be set")
	}
}

func TestAuditReauthFailureEvent(t *testing.T) {
	sink := NewChannelSink(16)

	client := buildAuditedClient(t, sink,
		func(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
			return nil, errAuth
		},
		func(ctx context.Context) error { return errReauth },
	)

	_, err := client.Do(context.Background(), "https://api.example.com", RequestOptions{})
	if !errors.Is(err, errAuth) {
		t.Fatalf("expected original error, got %v", err)
	}
	client.Close()

	var types []string
	for {
		select {
		case ev := <-sink.Events():
			types = append(types, ev.EventType)
			if ev.EventType == AuditReauthFailed && ev.Error != errReauth.Error() {
				t.Fatalf("failure event must carry the refresh error, got %q", ev.Error)
			}
			continue
		default:
		}
		break
	}

	want := []string{AuditReauthStarted, AuditReauthFailed, AuditOriginalErrorSurfaced}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("expected events %v, got %v", want, types)
	}
}

func TestAuditDropIfFull(t *testing.T) {
	sink := newGateSink()

	cfg := AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}
	d := newAuditDispatcher(cfg, sink)
	defer func() {
		close(sink.gate)
		d.Close()
	}()

	for i := 0; i < 64; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: AuditRetryIssued})
	}

	if d.Dropped() == 0 {
		t.Fatalf("expected drops with a full buffer and a blocked sink")
	}
}

func TestAuditCloseDrains(t *testing.T) {
	sink := &countingSink{}

	cfg := AuditConfig{Enabled: true, BufferSize: 128, DropIfFull: false}
	d := newAuditDispatcher(cfg, sink)

	const events = 100
	var wg sync.WaitGroup
	wg.Add(4)
	for w := 0; w < 4; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < events/4; i++ {
				d.Emit(context.Background(), AuditEvent{EventType: AuditRetryIssued, Timestamp: time.Now()})
			}
		}()
	}
	wg.Wait()
	d.Close()

	if got := sink.Count() + int64(d.Dropped()); got != events {
		t.Fatalf("expected %d events delivered or accounted, got %d", events, got)
	}
}

func TestAuditDisabledIsNil(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, &countingSink{})
	if d != nil {
		t.Fatalf("disabled audit must not allocate a dispatcher")
	}

	// nil dispatcher methods must be safe.
	d.Emit(context.Background(), AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatalf("nil dispatcher dropped count must be 0")
	}
}
