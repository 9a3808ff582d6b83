package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prepmate/interview-coach/internal/config"
	"prepmate/interview-coach/internal/repositories"
)

// CleanupJob marks interviews stuck in pending past a configurable age as
// abandoned so they stop showing up as resumable sessions.
type CleanupJob struct {
	interviewRepo repositories.InterviewRepository
	config        config.CleanupConfig
	cron          *cron.Cron
	logger        *zap.Logger
}

func NewCleanupJob(
	interviewRepo repositories.InterviewRepository,
	cfg config.CleanupConfig,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		interviewRepo: interviewRepo,
		config:        cfg,
		cron:          cron.New(),
		logger:        logger,
	}
}

// Start schedules the cleanup run.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.Run(); err != nil {
			j.logger.Error("interview cleanup run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("interview cleanup job started",
		zap.String("schedule", j.config.Schedule),
		zap.Duration("pending_ttl", j.config.PendingTTL))
	return nil
}

// Stop stops the scheduler.
func (j *CleanupJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Run performs a single cleanup pass.
func (j *CleanupJob) Run() error {
	cutoff := time.Now().Add(-j.config.PendingTTL)

	marked, err := j.interviewRepo.MarkAbandoned(cutoff)
	if err != nil {
		return err
	}

	if marked > 0 {
		j.logger.Info("marked stale pending interviews as abandoned",
			zap.Int64("count", marked))
	}
	return nil
}
