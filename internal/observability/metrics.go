package observability

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	meterName           = "maniac.dev/waitlist-web/internal/observability"
	requestDurationName = "http.server.request.duration"
	requestCountName    = "http.server.requests"
)

// MetricsMiddleware records request latency and a request count per route and status.
// A nil provider uses the global one.
func MetricsMiddleware(provider metric.MeterProvider, logger *zap.Logger) func(http.Handler) http.Handler {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	if logger == nil {
		logger = noopLogger
	}
	meter := provider.Meter(meterName)

	latency, err := meter.Float64Histogram(
		requestDurationName,
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for served requests"),
	)
	if err != nil {
		logger.Warn("observability: unable to register latency metric", zap.Error(err))
	}
	requests, err := meter.Int64Counter(
		requestCountName,
		metric.WithDescription("Count of served requests"),
	)
	if err != nil {
		logger.Warn("observability: unable to register request metric", zap.Error(err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newResponseRecorder(w)
			start := time.Now()
			next.ServeHTTP(recorder, r)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", routePattern(r)),
				attribute.Int("http.response.status_code", recorder.Status()),
			)
			if latency != nil {
				latency.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), attrs)
			}
			if requests != nil {
				requests.Add(r.Context(), 1, attrs)
			}
		})
	}
}
