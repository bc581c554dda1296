package jobs

import (
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/logging"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCacheReportSchedule runs the report once a minute.
const DefaultCacheReportSchedule = "@every 1m"

// CacheReportJob publishes the size of the conversion-rate cache.
// Every run sets the cache gauge of each kind and logs the sizes.
type CacheReportJob struct {
	stats    ports.RateCacheStats
	metrics  ports.RateCacheMetrics
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewCacheReportJob creates the job. An empty schedule means DefaultCacheReportSchedule.
// The schedule accepts six-field cron expressions (with seconds) and descriptors such as "@every 30s".
func NewCacheReportJob(
	stats ports.RateCacheStats,
	metrics ports.RateCacheMetrics,
	schedule string,
	logger *zap.Logger,
) *CacheReportJob {
	if schedule == "" {
		schedule = DefaultCacheReportSchedule
	}
	return &CacheReportJob{
		stats:    stats,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logging.Component(logger, "cache_report_job"),
	}
}

// Start schedules the report.
// Returns an error if the schedule cannot be parsed.
func (j *CacheReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Report); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Cache report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the job and waits for a running report to finish.
func (j *CacheReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Cache report job stopped")
}

// Report publishes the current cache sizes once.
// Kinds without cached rates are reported as zero.
func (j *CacheReportJob) Report() {
	cached := j.stats.CachedRates()

	fields := make([]zap.Field, 0, len(measure.Kinds()))
	total := 0
	for _, kind := range measure.Kinds() {
		entries := cached[kind]
		total += entries
		j.metrics.SetCachedRates(kind, entries)
		fields = append(fields, zap.Int(kind.String(), entries))
	}

	j.logger.Debug("Conversion rate cache", append(fields, zap.Int("total", total))...)
}
