package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"maniac.dev/waitlist-web/internal/config"
	custommw "maniac.dev/waitlist-web/internal/httpserver/middleware"
	"maniac.dev/waitlist-web/internal/observability"
	"maniac.dev/waitlist-web/internal/pages"
	"maniac.dev/waitlist-web/public"
)

const staticPrefix = "/public/static/"

// Dependencies collects collaborators the server needs beyond configuration.
type Dependencies struct {
	Logger         *zap.Logger
	Pages          *pages.Store
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// New constructs the HTTP server with the middleware stack, page routes, and embedded assets.
func New(cfg config.Config, deps Dependencies) (*http.Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Pages == nil {
		return nil, errors.New("httpserver: page store is required")
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	assets, err := custommw.AssetsWithCache(staticContent, staticPrefix)
	if err != nil {
		return nil, fmt.Errorf("httpserver: index static: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	router.Use(chimw.RealIP)
	router.Use(observability.TraceMiddleware(deps.TracerProvider))
	router.Use(observability.MetricsMiddleware(deps.MeterProvider, logger))
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.Recovery(logger))
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(cfg.Server.WriteTimeout))
	// runs before routing, so HEAD falls back to the GET handlers instead of 405
	router.Use(chimw.GetHead)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle(staticPrefix+"*", assets)

	h := newHandlers(deps.Pages, cfg.Site.BaseURL)
	router.Group(func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware())
		r.Get("/", h.Home)
		r.Get("/{slug}", h.Page)
		r.NotFound(h.NotFound)
	})

	return &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}, nil
}
