package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPClient(rateLimit float64) *RateLimitedHTTPClient {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRateLimitedHTTPClient(HTTPClientConfig{
		Timeout:           5 * time.Second,
		MaxRetries:        0,
		RetryWaitMin:      time.Millisecond,
		RetryWaitMax:      10 * time.Millisecond,
		RateLimit:         rateLimit,
		CircuitBreakerMax: 5,
	}, log)
}

// TestConcurrentRequests drives the shared client from as many goroutines
// as the slate worker pool uses, twice over, so the breaker bookkeeping is
// exercised under contention.
func TestConcurrentRequests(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestHTTPClient(1000)
	defer func() { _ = client.Close() }()

	const goroutines = 8
	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(context.Background(), server.URL)
			if err != nil {
				errs[i] = err
				return
			}
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, int64(goroutines), atomic.LoadInt64(&hits))
}

func TestCircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // every request fails with a connection error

	client := newTestHTTPClient(1000)
	defer func() { _ = client.Close() }()

	for i := 0; i < 5; i++ {
		resp, err := client.Get(context.Background(), server.URL)
		require.Error(t, err)
		require.Nil(t, resp)
	}

	// Breaker is now open; requests fail fast without touching the network
	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestCircuitBreakerResetsOnSuccess(t *testing.T) {
	var fail int64 = 1
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt64(&fail) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestHTTPClient(1000)
	defer func() { _ = client.Close() }()

	// Three failures, under the breaker threshold
	for i := 0; i < 3; i++ {
		_, err := client.Get(context.Background(), server.URL)
		require.Error(t, err)
	}

	atomic.StoreInt64(&fail, 0)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 0, client.consecutiveErrors)
	assert.False(t, client.isOpen)
}
