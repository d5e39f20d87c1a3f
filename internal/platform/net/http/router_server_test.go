package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crimemap/internal/platform/config"
	phttp "crimemap/internal/platform/net/http"
)

func TestNewServerDefaultsAndMux(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q, want :4000", srv.Addr())
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServerPortFromEnv(t *testing.T) {
	t.Setenv("CORE_API_PORT", "8123")
	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if srv.Addr() != ":8123" {
		t.Fatalf("addr = %q, want :8123", srv.Addr())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Setenv("T_PORT", "127.0.0.1:0")
	t.Setenv("T_SHUTDOWN_GRACE", "1s")
	srv := phttp.NewServer(config.New().Prefix("T_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
