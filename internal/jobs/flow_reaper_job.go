package jobs

import (
	"context"
	"log/slog"
	"time"

	"storecourier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultFlowReaperSchedule runs the reaper at the start of every minute.
const DefaultFlowReaperSchedule = "0 * * * * *"

// FlowReaperJob evicts wizard flows that have been idle for longer than idleTTL.
type FlowReaperJob struct {
	handler  commands.ReapIdleFlowsCommandHandler
	schedule string
	idleTTL  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFlowReaperJob takes a six-field cron schedule (seconds first).
func NewFlowReaperJob(
	handler commands.ReapIdleFlowsCommandHandler,
	schedule string,
	idleTTL time.Duration,
	logger *slog.Logger,
) *FlowReaperJob {
	if schedule == "" {
		schedule = DefaultFlowReaperSchedule
	}
	return &FlowReaperJob{
		handler:  handler,
		schedule: schedule,
		idleTTL:  idleTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "flow_reaper_job"),
	}
}

func (j *FlowReaperJob) Start() error {
	cmd, err := commands.NewReapIdleFlowsCommand(j.idleTTL)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Flow reaper job started",
		"schedule", j.schedule, "idle_ttl", j.idleTTL)
	return nil
}

func (j *FlowReaperJob) run(ctx context.Context, cmd commands.ReapIdleFlowsCommand) {
	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Flow reaper job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Idle flows removed", "count", removed)
	}
}

// Stop waits for a running tick to finish.
func (j *FlowReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Flow reaper job stopped")
}
