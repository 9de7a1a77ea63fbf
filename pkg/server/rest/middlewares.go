package rest

import (
	"net/http"
	"strconv"
	"time"

	"lintang/metronav/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "metronav"

// metrics prometheus untuk http layer dan route search.
type metrics struct {
	searchCount    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	httpDuration   *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		searchCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "route_search_count",
			Help:      "Route searches answered, by algorithm, cost mode, outcome and cache hit",
		}, []string{"algorithm", "mode", "found", "cached"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "route_search_duration_seconds",
			Help:      "Time spent in the routing service per search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 0.1ms .. ~1.6s
		}, []string{"algorithm"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of http requests by route pattern",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5},
		}, []string{"method", "path"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Http requests by route pattern and status code",
		}, []string{"method", "path", "status"}),
	}
	reg.MustRegister(m.searchCount, m.searchDuration, m.httpDuration, m.httpRequests)
	return m
}

// observeSearch dipanggil handler setelah service selesai menjawab query rute.
func (m *metrics) observeSearch(res service.RouteResult, elapsed time.Duration) {
	alg := string(res.Algorithm)
	m.searchCount.WithLabelValues(alg, res.Mode.String(), strconv.FormatBool(res.Found), strconv.FormatBool(res.Cached)).Inc()
	m.searchDuration.WithLabelValues(alg).Observe(elapsed.Seconds())
}

// statusRecorder simpan status code yang ditulis handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// routePattern pattern chi (misal /api/stations/{id}) supaya label path tidak meledak per id.
// path yang tidak match route manapun dilabeli "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func PromeHttpMiddleware(m *metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			path := routePattern(r)
			m.httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			m.httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(rw.status)).Inc()
		})
	}
}
