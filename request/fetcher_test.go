package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lstpsche/openmeteo-cli/errs"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "openmeteo-cli" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte(`{"latitude":51.5}`))
	}))
	defer srv.Close()

	body, err := NewFetcher(zap.NewNop()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != `{"latitude":51.5}` {
		t.Errorf("body = %q", body)
	}
}

func TestFetchUpstreamErrorWithReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90"}`))
	}))
	defer srv.Close()

	_, err := NewFetcher(zap.NewNop()).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected upstream error")
	}
	if !errs.IsKind(err, errs.KindUpstream) {
		t.Errorf("kind = %v", err)
	}
	if !strings.Contains(err.Error(), "status 400") ||
		!strings.Contains(err.Error(), "Latitude must be in range") {
		t.Errorf("error must carry status and upstream reason: %v", err)
	}
	if errs.ExitCode(err) != errs.ExitService {
		t.Errorf("exit code = %d", errs.ExitCode(err))
	}
}

func TestFetchUpstreamErrorRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway\n"))
	}))
	defer srv.Close()

	_, err := NewFetcher(zap.NewNop()).Fetch(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "bad gateway") {
		t.Errorf("err = %v", err)
	}
}

func TestFetchNetworkError(t *testing.T) {
	// A closed server guarantees a transport-level failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewFetcher(zap.NewNop()).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected network error")
	}
	if !errs.IsKind(err, errs.KindNetwork) {
		t.Errorf("kind = %v", err)
	}
	if errs.ExitCode(err) != errs.ExitService {
		t.Errorf("exit code = %d", errs.ExitCode(err))
	}
}

func TestRateLimitedFetcherForwards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewRateLimitedFetcher(NewFetcher(zap.NewNop()), 100, 2)
	for i := 0; i < 2; i++ {
		body, err := f.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if string(body) != "ok" {
			t.Errorf("body = %q", body)
		}
	}
}

func TestRateLimitedFetcherCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewRateLimitedFetcher(NewFetcher(zap.NewNop()), 0.001, 0)
	if _, err := f.Fetch(ctx, "http://127.0.0.1:0"); err == nil {
		t.Fatal("expected cancellation error")
	}
}
