package scheduler

import (
	"context"
	"time"

	"returnfilers/pkg/config"
	"returnfilers/pkg/logger"

	"go.uber.org/zap"
)

const (
	LeadRetentionJobName = "lead_retention"
	RateLimitSweepName   = "rate_limit_sweep"

	rateLimitSweepCron = "*/5 * * * *"
)

// LeadPruner deletes closed leads older than a cutoff
type LeadPruner interface {
	PruneClosed(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sweeper drops idle rate-limit buckets
type Sweeper interface {
	Sweep() int
}

// LeadRetentionJob prunes closed leads older than cfg.Days
func LeadRetentionJob(cfg *config.RetentionConfig, pruner LeadPruner) *ScheduledJob {
	return NewJob(LeadRetentionJobName, cfg.Cron, func(ctx context.Context) error {
		cutoff := time.Now().Add(-cfg.MaxAge())
		removed, err := pruner.PruneClosed(ctx, cutoff)
		if err != nil {
			return err
		}
		logger.Info("Closed leads pruned",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff))
		return nil
	})
}

// RateLimitSweepJob keeps the per-IP limiter map bounded
func RateLimitSweepJob(s Sweeper) *ScheduledJob {
	return NewJob(RateLimitSweepName, rateLimitSweepCron, func(ctx context.Context) error {
		if removed := s.Sweep(); removed > 0 {
			logger.Debug("Idle rate limit buckets removed", zap.Int("removed", removed))
		}
		return nil
	})
}

// DefaultJobs builds the jobs enabled by cfg. Nil collaborators skip their job.
func DefaultJobs(cfg *config.Config, pruner LeadPruner, sweeper Sweeper) []*ScheduledJob {
	var jobs []*ScheduledJob

	if retention := cfg.GetRetentionConfig(); retention.Enabled && pruner != nil {
		jobs = append(jobs, LeadRetentionJob(retention, pruner))
	}
	if sweeper != nil {
		jobs = append(jobs, RateLimitSweepJob(sweeper))
	}

	logger.Info("Generated default jobs", zap.Int("count", len(jobs)))
	return jobs
}
