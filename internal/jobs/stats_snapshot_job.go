package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"logistics/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the snapshot at the start of every minute.
const DefaultStatsSchedule = "0 * * * * *"

// StatsSnapshot is the running total of priced deliveries since start-up.
type StatsSnapshot struct {
	QuotesByFreightType map[string]float64
	TotalQuotes         float64
	PromotionsApplied   float64
}

// StatsSnapshotJob periodically logs the quote and promotion counters.
type StatsSnapshotJob struct {
	gatherer prometheus.Gatherer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatsSnapshotJob(gatherer prometheus.Gatherer, schedule string, logger *slog.Logger) *StatsSnapshotJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &StatsSnapshotJob{
		gatherer: gatherer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_snapshot_job"),
	}
}

// Start schedules the job. An invalid cron expression is reported here.
func (j *StatsSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running snapshot to finish.
func (j *StatsSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}

// Run takes one snapshot and logs it.
func (j *StatsSnapshotJob) Run(ctx context.Context) {
	snapshot, err := j.Snapshot()
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot failed", "error", err)
		return
	}

	attrs := []any{
		"total_quotes", snapshot.TotalQuotes,
		"promotions_applied", snapshot.PromotionsApplied,
	}
	for _, code := range slices.Sorted(maps.Keys(snapshot.QuotesByFreightType)) {
		attrs = append(attrs, "quotes_"+code, snapshot.QuotesByFreightType[code])
	}
	j.logger.InfoContext(ctx, "Stats snapshot", attrs...)
}

// Snapshot reads the current counter values from the gatherer.
func (j *StatsSnapshotJob) Snapshot() (StatsSnapshot, error) {
	families, err := j.gatherer.Gather()
	if err != nil {
		return StatsSnapshot{}, fmt.Errorf("gather metrics: %w", err)
	}

	snapshot := StatsSnapshot{QuotesByFreightType: map[string]float64{}}
	for _, family := range families {
		switch family.GetName() {
		case metrics.FreightQuotesTotalName:
			for _, m := range family.GetMetric() {
				value := m.GetCounter().GetValue()
				snapshot.QuotesByFreightType[labelValue(m, "freight_type")] += value
				snapshot.TotalQuotes += value
			}
		case metrics.PromotionsAppliedTotalName:
			for _, m := range family.GetMetric() {
				snapshot.PromotionsApplied += m.GetCounter().GetValue()
			}
		}
	}
	return snapshot, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}
