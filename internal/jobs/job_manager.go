package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storecourier/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	flowReaperJob *FlowReaperJob
}

func NewJobManager(
	reapIdleFlowsHandler commands.ReapIdleFlowsCommandHandler,
	reaperSchedule string,
	flowIdleTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		flowReaperJob: NewFlowReaperJob(reapIdleFlowsHandler, reaperSchedule, flowIdleTTL, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.flowReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start flow reaper job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.flowReaperJob.Stop()
}
