package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskResetSweep is the task type for purging expired password reset tokens.
	TaskResetSweep = "reset:sweep"
)

// NewResetSweepTask constructs the sweep task. It carries no payload.
func NewResetSweepTask() *asynq.Task {
	return asynq.NewTask(TaskResetSweep, nil)
}

// ResetSweeper deletes expired password reset tokens and reports how many
// were removed.
type ResetSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// NewResetSweepHandler builds the handler for TaskResetSweep tasks.
// Expired tokens are already refused on read, so the sweep is a storage
// hygiene pass rather than a correctness requirement.
func NewResetSweepHandler(sweeper ResetSweeper, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		removed, err := sweeper.SweepExpired(ctx)
		if err != nil {
			logger.Error("reset token sweep failed", slog.Any("error", err))
			return err
		}
		if removed > 0 {
			logger.Info("reset token sweep", slog.Int64("removed", removed))
		}
		return nil
	}
}
