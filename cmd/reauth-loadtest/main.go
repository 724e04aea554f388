package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goReauth "github.com/MrEthical07/goReauth"
	"github.com/MrEthical07/goReauth/classify"
	"github.com/MrEthical07/goReauth/token"
	"github.com/MrEthical07/goReauth/transport"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// credentialServer simulates the resource server's view of the credential: it
// accepts exactly one secret at a time and rotates it on a fixed interval,
// which is what drives auth-classified failures into the client under load.
type credentialServer struct {
	mu      sync.RWMutex
	secret  string
	rotated atomic.Int64
}

func (s *credentialServer) current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret
}

func (s *credentialServer) rotate() {
	s.mu.Lock()
	s.secret = uuid.NewString()
	s.mu.Unlock()
	s.rotated.Add(1)
}

func main() {
	var (
		concurrency   = flag.Int("concurrency", 64, "number of concurrent workers")
		ops           = flag.Int("ops", 100000, "total wrapped calls to issue")
		rotateEvery   = flag.Duration("rotate-every", 250*time.Millisecond, "server-side credential rotation interval")
		reauthLatency = flag.Duration("reauth-latency", 5*time.Millisecond, "simulated re-authentication latency")
		redisAddr     = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix        = flag.String("prefix", "rt", "credential key prefix")
	)
	flag.Parse()

	if *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "concurrency and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	server := &credentialServer{}
	server.rotate()

	store := token.NewRedisStore(client, token.Config{RedisPrefix: *prefix})
	if err := store.Set(ctx, server.current()); err != nil {
		fmt.Fprintf(os.Stderr, "seed credential failed: %v\n", err)
		os.Exit(1)
	}

	stopRotation := make(chan struct{})
	go func() {
		ticker := time.NewTicker(*rotateEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				server.rotate()
			case <-stopRotation:
				return
			}
		}
	}()

	// In-process fake transport: succeeds only when the stored credential
	// matches the server's current secret, otherwise fails exactly like the
	// real transport package would on a 401.
	fakeTransport := func(ctx context.Context, url string, opts goReauth.RequestOptions) (*http.Response, error) {
		tok, err := store.Token(ctx)
		if err != nil && !errors.Is(err, token.ErrNotFound) {
			return nil, err
		}
		if tok != server.current() {
			return nil, &transport.StatusError{
				StatusCode: http.StatusUnauthorized,
				Status:     "401 Unauthorized",
				Method:     opts.Method,
				URL:        url,
			}
		}
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	}

	reauthenticate := func(ctx context.Context) error {
		time.Sleep(*reauthLatency)
		return store.Set(ctx, server.current())
	}

	wrapped, err := goReauth.New().
		WithTransport(fakeTransport).
		WithClassifier(classify.OnUnauthorized()).
		WithReauthenticator(reauthenticate).
		WithMetricsEnabled(true).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	defer wrapped.Close()

	stats := runCallPhase(ctx, wrapped, *ops, *concurrency)
	close(stopRotation)

	fmt.Println("---- results ----")
	printStats("wrapped call", stats)
	fmt.Printf("credential rotations: %d\n", server.rotated.Load())
	printCounters(wrapped.MetricsSnapshot())
}

func runCallPhase(ctx context.Context, client *goReauth.Client, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				_, err := client.Do(ctx, "fake://resource", goReauth.RequestOptions{Method: http.MethodGet})
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf(
		"%s: ops=%d failures=%d total=%s ops/s=%.0f p50=%s p95=%s p99=%s\n",
		name, s.ops, s.failures, s.total.Round(time.Millisecond), s.opsPerS, s.p50, s.p95, s.p99,
	)
}

func printCounters(snap goReauth.MetricsSnapshot) {
	names := []struct {
		id    goReauth.MetricID
		label string
	}{
		{goReauth.MetricTransportCall, "transport_calls"},
		{goReauth.MetricTransportRetry, "transport_retries"},
		{goReauth.MetricCallSuccess, "call_successes"},
		{goReauth.MetricAuthFailure, "auth_failures"},
		{goReauth.MetricNonAuthFailure, "non_auth_failures"},
		{goReauth.MetricReauthStarted, "reauths_started"},
		{goReauth.MetricReauthSuccess, "reauths_succeeded"},
		{goReauth.MetricReauthFailure, "reauths_failed"},
		{goReauth.MetricEpisodeCoalesced, "episodes_coalesced"},
		{goReauth.MetricBystanderReplay, "bystander_replays"},
		{goReauth.MetricOriginalErrorSurfaced, "original_errors_surfaced"},
	}
	for _, n := range names {
		fmt.Printf("%s=%d\n", n.label, snap.Counters[n.id])
	}
	if buckets, ok := snap.Histograms[goReauth.MetricReauthLatency]; ok {
		fmt.Printf("reauth_latency_buckets=%v\n", buckets)
	}
}
