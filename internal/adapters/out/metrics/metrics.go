// Package metrics exports the shipping core's counters to Prometheus.
package metrics

import (
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipping"

var _ measure.RateObserver = (*Recorder)(nil)
var _ ports.PackingMetrics = (*Recorder)(nil)
var _ ports.RateCacheMetrics = (*Recorder)(nil)

// Recorder implements the core's metrics ports on top of Prometheus collectors.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewRecorder(reg)
//	registry, _ := measure.NewStandardRegistry(measure.WithRateObserver(recorder))
type Recorder struct {
	rateLookups      *prometheus.CounterVec
	rateCacheEntries *prometheus.GaugeVec
	packingRequests  *prometheus.CounterVec
	packagesPerBatch prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		rateLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_rate_lookups_total",
			Help:      "Conversion rate lookups by kind and cache result.",
		}, []string{"kind", "result"}),
		rateCacheEntries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "conversion_rate_cache_entries",
			Help:      "Memoised conversion rates by kind.",
		}, []string{"kind"}),
		packingRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packing_requests_total",
			Help:      "Packing requests by result.",
		}, []string{"result"}),
		packagesPerBatch: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "packages_per_shipment",
			Help:      "Packages emitted per successfully packed shipment.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 500, 1000, 10000},
		}),
	}
}

// ObserveRateLookup counts a Rate call that was answered from the cache or resolved.
func (r *Recorder) ObserveRateLookup(kind measure.Kind, cached bool) {
	result := "miss"
	if cached {
		result = "hit"
	}
	r.rateLookups.WithLabelValues(kind.String(), result).Inc()
}

// SetCachedRates publishes the cache size of a kind.
func (r *Recorder) SetCachedRates(kind measure.Kind, entries int) {
	r.rateCacheEntries.WithLabelValues(kind.String()).Set(float64(entries))
}

// ObservePacking counts a packing request; the package count is only sampled on success.
func (r *Recorder) ObservePacking(result ports.PackingResult, packages int) {
	r.packingRequests.WithLabelValues(string(result)).Inc()
	if result == ports.PackingSucceeded {
		r.packagesPerBatch.Observe(float64(packages))
	}
}
