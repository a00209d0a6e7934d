package metrics

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"url-toolkit/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// New records request counts and latencies labelled by chi route pattern.
// Requests whose path is listed in skip (such as the scrape endpoint) are not recorded.
func New(skip ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skip, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				duration := time.Since(start).Seconds()

				routePattern := unmatchedRoute
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					routePattern = rctx.RoutePattern()
				}

				statusCode := strconv.Itoa(ww.Status())

				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method,
					routePattern,
					statusCode,
				).Inc()

				metrics.HTTPRequestDuration.WithLabelValues(
					r.Method,
					routePattern,
				).Observe(duration)
			}()

			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}
