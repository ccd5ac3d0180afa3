package lunarcrushapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunarcrush_api_request_total",
			Help: "Total number of LunarCrush API requests that received a response",
		}, []string{"resource", "status_code"},
	)

	requestLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lunarcrush_api_request_duration_milliseconds",
			Help:    "LunarCrush API request duration from request to response body in milliseconds",
			Buckets: prometheus.ExponentialBuckets(25, 2, 10), // 25ms to ~12.8s
		}, []string{"resource"},
	)

	requestErrorMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunarcrush_api_request_errors_total",
			Help: "Total number of LunarCrush API request failures by error kind",
		}, []string{"resource", "kind"},
	)
)

func init() {
	prometheus.MustRegister(
		requestTotalMetrics,
		requestLatencyMetrics,
		requestErrorMetrics,
	)
}

// resourceLabel keeps the first two path segments, "/public/coins/1/v1"
// becomes "/public/coins", so caller-supplied identifiers never become labels.
func resourceLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}

	return "/" + strings.Join(parts, "/")
}

func recordResponseMetrics(resource string, statusCode int, duration time.Duration) {
	requestTotalMetrics.With(prometheus.Labels{
		"resource":    resource,
		"status_code": strconv.Itoa(statusCode),
	}).Inc()

	requestLatencyMetrics.With(prometheus.Labels{
		"resource": resource,
	}).Observe(float64(duration.Milliseconds()))
}

func recordErrorMetrics(resource string, kind string) {
	requestErrorMetrics.With(prometheus.Labels{
		"resource": resource,
		"kind":     kind,
	}).Inc()
}
