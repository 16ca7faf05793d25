package jobs

import (
	"context"
	"log/slog"

	"deliverydesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultTotalReportSchedule runs the report at second 0 of every minute.
const DefaultTotalReportSchedule = "0 * * * * *"

// DeliveriesReader is the query the report is built from.
type DeliveriesReader interface {
	Handle(ctx context.Context, query queries.GetDeliveriesQuery) (queries.GetDeliveriesQueryResponse, error)
}

// DeliveryTotalJob periodically logs the number of finalized deliveries.
type DeliveryTotalJob struct {
	reader   DeliveriesReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryTotalJob creates the job. An empty schedule selects
// DefaultTotalReportSchedule.
func NewDeliveryTotalJob(reader DeliveriesReader, schedule string, logger *slog.Logger) *DeliveryTotalJob {
	if schedule == "" {
		schedule = DefaultTotalReportSchedule
	}

	return &DeliveryTotalJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_total_job"),
	}
}

// Start schedules the report. It fails if the schedule cannot be parsed.
func (j *DeliveryTotalJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery total job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *DeliveryTotalJob) Run(ctx context.Context) {
	resp, err := j.reader.Handle(ctx, queries.NewGetDeliveriesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery total job failed", "error", err)
		return
	}

	attrs := []any{"total", resp.Total}
	if resp.EditingNumber != nil {
		attrs = append(attrs, "editing", *resp.EditingNumber)
	}
	j.logger.InfoContext(ctx, "Total deliveries", attrs...)
}

// Stop stops scheduling and waits for a running report to finish.
func (j *DeliveryTotalJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery total job stopped")
}
