package metrics_test

import (
	"strings"
	"testing"

	"shipping/internal/adapters/out/metrics"
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RateLookups(t *testing.T) {
	t.Run("should count registry hits and misses", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		recorder := metrics.NewRecorder(reg)
		registry, err := measure.NewStandardRegistry(measure.WithRateObserver(recorder))
		require.NoError(t, err)

		for range 3 {
			_, err = registry.Rate(measure.Foot, measure.Centimetre)
			require.NoError(t, err)
		}

		expected := `
# HELP shipping_conversion_rate_lookups_total Conversion rate lookups by kind and cache result.
# TYPE shipping_conversion_rate_lookups_total counter
shipping_conversion_rate_lookups_total{kind="length",result="hit"} 2
shipping_conversion_rate_lookups_total{kind="length",result="miss"} 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "shipping_conversion_rate_lookups_total"))
	})
}

func TestRecorder_SetCachedRates(t *testing.T) {
	t.Run("should overwrite the gauge", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		recorder := metrics.NewRecorder(reg)

		recorder.SetCachedRates(measure.Mass, 4)
		recorder.SetCachedRates(measure.Mass, 6)
		recorder.SetCachedRates(measure.Length, 2)

		expected := `
# HELP shipping_conversion_rate_cache_entries Memoised conversion rates by kind.
# TYPE shipping_conversion_rate_cache_entries gauge
shipping_conversion_rate_cache_entries{kind="length"} 2
shipping_conversion_rate_cache_entries{kind="mass"} 6
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "shipping_conversion_rate_cache_entries"))
	})
}

func TestRecorder_ObservePacking(t *testing.T) {
	t.Run("should count every result and sample successful sizes", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		recorder := metrics.NewRecorder(reg)

		recorder.ObservePacking(ports.PackingSucceeded, 3)
		recorder.ObservePacking(ports.PackingSucceeded, 7)
		recorder.ObservePacking(ports.PackingRejected, 0)
		recorder.ObservePacking(ports.PackingFailed, 0)

		count, err := testutil.GatherAndCount(reg, "shipping_packing_requests_total")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		expected := `
# HELP shipping_packing_requests_total Packing requests by result.
# TYPE shipping_packing_requests_total counter
shipping_packing_requests_total{result="failed"} 1
shipping_packing_requests_total{result="packed"} 2
shipping_packing_requests_total{result="rejected"} 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "shipping_packing_requests_total"))

		families, err := reg.Gather()
		require.NoError(t, err)
		for _, family := range families {
			if family.GetName() != "shipping_packages_per_shipment" {
				continue
			}
			histogram := family.GetMetric()[0].GetHistogram()
			assert.Equal(t, uint64(2), histogram.GetSampleCount())
			assert.Equal(t, 10.0, histogram.GetSampleSum())
		}
	})
}

func TestNewRecorder_Unregistered(t *testing.T) {
	t.Run("should work without a registerer", func(t *testing.T) {
		recorder := metrics.NewRecorder(nil)

		assert.NotPanics(t, func() {
			recorder.ObservePacking(ports.PackingSucceeded, 1)
			recorder.ObserveRateLookup(measure.Mass, true)
			recorder.SetCachedRates(measure.Length, 1)
		})
	})
}
