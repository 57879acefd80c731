package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"maniac.dev/waitlist-web/content"
	"maniac.dev/waitlist-web/internal/config"
	"maniac.dev/waitlist-web/internal/httpserver"
	"maniac.dev/waitlist-web/internal/pages"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*config.Config, *httpserver.Dependencies)

// WithBaseURL sets the public origin used for canonical tags.
func WithBaseURL(url string) ServerOption {
	return func(cfg *config.Config, _ *httpserver.Dependencies) {
		cfg.Site.BaseURL = url
	}
}

// WithLogger wires a custom logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(_ *config.Config, deps *httpserver.Dependencies) {
		deps.Logger = logger
	}
}

// WithPages overrides the embedded page store.
func WithPages(store *pages.Store) ServerOption {
	return func(_ *config.Config, deps *httpserver.Dependencies) {
		deps.Pages = store
	}
}

// WithTracerProvider wires a tracer provider, typically backed by a span recorder.
func WithTracerProvider(provider trace.TracerProvider) ServerOption {
	return func(_ *config.Config, deps *httpserver.Dependencies) {
		deps.TracerProvider = provider
	}
}

// WithMeterProvider wires a meter provider, typically backed by a manual reader.
func WithMeterProvider(provider metric.MeterProvider) ServerOption {
	return func(_ *config.Config, deps *httpserver.Dependencies) {
		deps.MeterProvider = provider
	}
}

// NewServer constructs an httptest server running the web stack with the embedded content.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	store, err := pages.Load(content.FS, content.Dir)
	if err != nil {
		t.Fatalf("load pages: %v", err)
	}

	cfg := config.Config{
		Server: config.ServerConfig{
			Address:         ":0",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Environment: "test",
		LogLevel:    "info",
	}
	deps := httpserver.Dependencies{
		Logger: zap.NewNop(),
		Pages:  store,
	}
	for _, opt := range opts {
		opt(&cfg, &deps)
	}

	srv, err := httpserver.New(cfg, deps)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
