package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/moklet-dev/twibbon/internal/config"
	"github.com/moklet-dev/twibbon/internal/site"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := site.New(config.New(),
		site.WithMetrics(site.NewMetrics(site.WithRegistry(reg))),
		site.WithLogger(logger),
	)
	return New(Config{
		Addr:     "127.0.0.1:0",
		Site:     b,
		Registry: reg,
		Gatherer: reg,
		Logger:   logger,
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", "<!DOCTYPE html>"},
		{"/section", "text/html; charset=utf-8", "Why Choose Moklet Twibbon"},
		{"/_twibbon/motion.js", "text/javascript; charset=utf-8", "IntersectionObserver"},
		{"/healthz", "text/plain; charset=utf-8", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s.Handler(), tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestSectionIsFragment(t *testing.T) {
	s := newTestServer(t)

	body := get(t, s.Handler(), "/section").Body.String()
	if strings.Contains(body, "<html") {
		t.Error("/section should not include the document shell")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	get(t, s.Handler(), "/")
	get(t, s.Handler(), "/section")

	body := get(t, s.Handler(), "/metrics").Body.String()
	for _, want := range []string{
		`twibbon_renders_total{target="page"} 1`,
		`twibbon_renders_total{target="section"} 1`,
		`twibbon_http_request_duration_seconds_count{method="GET",path="/",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics missing %q", want)
		}
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	if rec := get(t, s.Handler(), "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
