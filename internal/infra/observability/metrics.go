package observability

import (
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the rewards BFA.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	cartItems       prometheus.Counter
	engineErrors    *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_request_duration_seconds",
				Help:    "Duration of engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		recommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_recommendations_total",
				Help: "Total best-card recommendations by spend category.",
			},
			[]string{"category"},
		),
		cartItems: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_cart_items_total",
				Help: "Total cart items run through the optimizer.",
			},
		),
		engineErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_engine_errors_total",
				Help: "Total engine errors by kind.",
			},
			[]string{"kind"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrRecommendation increments the recommendation counter for a category.
func (m *Metrics) IncrRecommendation(category string) {
	m.recommendations.WithLabelValues(category).Inc()
}

// AddCartItems records how many items a cart optimization processed.
func (m *Metrics) AddCartItems(n int) {
	m.cartItems.Add(float64(n))
}

// IncrEngineError increments the engine error counter.
func (m *Metrics) IncrEngineError(kind string) {
	m.engineErrors.WithLabelValues(kind).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// GetEngineSnapshot returns a snapshot of engine metrics suitable for the
// GET /v1/metrics/engine endpoint.
func (m *Metrics) GetEngineSnapshot() *domain.EngineMetrics {
	// Gather current values from Prometheus counters.
	// Note: Prometheus counters expose cumulative values.
	recommendations := sumCounterVec(m.recommendations)
	errorCount := sumCounterVec(m.engineErrors)
	cacheHits := getCounterValue(m.cacheHits, "carddata")
	cacheMisses := getCounterValue(m.cacheMisses, "carddata")

	cartItems := float64(0)
	c := &dto.Metric{}
	if err := m.cartItems.Write(c); err == nil && c.Counter != nil && c.Counter.Value != nil {
		cartItems = *c.Counter.Value
	}

	errorRate := float64(0)
	if recommendations+errorCount > 0 {
		errorRate = errorCount / (recommendations + errorCount)
	}
	cacheHitRate := float64(0)
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.EngineMetrics{
		TotalRecommendations: int64(recommendations),
		CartItemsOptimized:   int64(cartItems),
		ErrorCount:           int64(errorCount),
		ErrorRate:            errorRate,
		CacheHitRate:         cacheHitRate,
		Period:               "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

// sumCounterVec adds up every child of a CounterVec across label values.
func sumCounterVec(cv *prometheus.CounterVec) float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		cv.Collect(ch)
		close(ch)
	}()

	total := float64(0)
	for metric := range ch {
		m := &dto.Metric{}
		if err := metric.Write(m); err != nil {
			continue
		}
		if m.Counter != nil && m.Counter.Value != nil {
			total += *m.Counter.Value
		}
	}
	return total
}
