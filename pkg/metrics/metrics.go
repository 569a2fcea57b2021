package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the counters the ordering flow reports.
type Metrics struct {
	OrdersPlaced    prometheus.Counter
	OrdersAdvanced  *prometheus.CounterVec
	OrdersCancelled prometheus.Counter
	CartMutations   *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPLatencyMS   *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New registers the SeatServe metric set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seatserve",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	ordersAdvanced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seatserve",
		Name:      "orders_advanced_total",
		Help:      "Total number of order status advances.",
	}, []string{"trigger"})
	ordersCancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seatserve",
		Name:      "orders_cancelled_total",
		Help:      "Total number of cancelled orders.",
	})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seatserve",
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations.",
	}, []string{"op"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seatserve",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seatserve",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method"})

	registry.MustRegister(ordersPlaced, ordersAdvanced, ordersCancelled,
		cartMutations, httpRequests, httpLatency)

	return &Metrics{
		OrdersPlaced:    ordersPlaced,
		OrdersAdvanced:  ordersAdvanced,
		OrdersCancelled: ordersCancelled,
		CartMutations:   cartMutations,
		HTTPRequests:    httpRequests,
		HTTPLatencyMS:   httpLatency,
		registry:        registry,
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency for every handler.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		m.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rw.status)).Inc()
		m.HTTPLatencyMS.WithLabelValues(r.Method).Observe(float64(time.Since(start).Milliseconds()))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
