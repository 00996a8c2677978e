package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

func TestConcurrencyLimitMiddleware(t *testing.T) {
	const limit = 2
	const requests = 8

	var inFlight atomic.Int32
	var peak atomic.Int32

	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
	})

	cfg := newTestServer(&fakeRunner{}).config
	cfg.MaxInFlight = limit
	srv := &Server{config: cfg}

	limited := srv.ConcurrencyLimitMiddleware(handler)
	ts := httptest.NewServer(limited)
	defer ts.Close()

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(ts.URL)
			if err == nil {
				resp.Body.Close()
			}
		}()
	}

	// Let all requests arrive, then release the handlers
	close(release)
	wg.Wait()

	if got := peak.Load(); got > limit {
		t.Errorf("Peak concurrency = %d, want at most %d", got, limit)
	}
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	srv := newTestServer(&fakeRunner{})

	handler := srv.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("Status = %d, want 418", rec.Code)
	}
}
