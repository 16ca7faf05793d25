package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryTotalJob *DeliveryTotalJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(deliveries DeliveriesReader, totalReportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		deliveryTotalJob: NewDeliveryTotalJob(deliveries, totalReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryTotalJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery total job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryTotalJob.Stop()
}
