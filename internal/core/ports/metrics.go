package ports

import (
	"shipping/internal/core/domain/model/measure"
)

// PackingResult classifies a packing request for metrics.
type PackingResult string

const (
	// PackingSucceeded means every unit was packed.
	PackingSucceeded PackingResult = "packed"

	// PackingRejected means the order cannot be packed under the given limits.
	PackingRejected PackingResult = "rejected"

	// PackingFailed means the request itself was invalid or an unexpected error occurred.
	PackingFailed PackingResult = "failed"
)

// PackingMetrics records the outcome of packing requests.
type PackingMetrics interface {
	// ObservePacking counts a request; packages is only meaningful for PackingSucceeded.
	ObservePacking(result PackingResult, packages int)
}

// RateCacheMetrics publishes the size of the conversion-rate cache.
type RateCacheMetrics interface {
	SetCachedRates(kind measure.Kind, entries int)
}
