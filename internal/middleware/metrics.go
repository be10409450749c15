package middleware

import (
	"net/http"
	"strconv"
	"time"

	"superlists/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// WithMetrics считает запросы и латентность по шаблону маршрута chi.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := newLoggingResponseWriter(w)

		next.ServeHTTP(lw, r)

		route := routePattern(r)
		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(lw.responseData.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// routePattern — шаблон маршрута chi, известный только после роутинга.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return "unmatched"
}
