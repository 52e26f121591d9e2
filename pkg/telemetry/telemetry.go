// Package telemetry exports request-level Prometheus metrics and wraps
// handlers with the instrumentation middleware.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"chatkv/pkg/logger"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatkv_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatkv_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// knownRoutes caps label cardinality: anything else is bucketed as
// "unmatched" so random probe paths cannot mint new series.
var knownRoutes = map[string]struct{}{
	"/signup":         {},
	"/login":          {},
	"/send-message":   {},
	"/messages":       {},
	"/create-group":   {},
	"/delete-group":   {},
	"/delete":         {},
	"/remove":         {},
	"/users-messaged": {},
	"/healthz":        {},
	"/readyz":         {},
}

func init() {
	prometheus.MustRegister(httpRequests, httpDuration)
}

// RegisterStoreGauges exports store-level gauges. sizeFn is read at
// collection time, so the gauge tracks the live database.
func RegisterStoreGauges(sizeFn func() uint64) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "chatkv_store_disk_bytes",
		Help: "On-disk size of the Pebble database directory.",
	}, func() float64 { return float64(sizeFn()) }))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records count and latency for every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.LogRequest(r)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if _, ok := knownRoutes[r.URL.Path]; ok {
			route = r.URL.Path
		}
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
