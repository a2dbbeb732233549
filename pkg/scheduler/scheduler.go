// Package scheduler runs the periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"returnfilers/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job statuses
const (
	JobStatusScheduled = "scheduled"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNoJobFunc   = errors.New("job has no function")
	ErrJobRunning  = errors.New("job is already running")
)

// JobFunc is the body of a scheduled job
type JobFunc func(ctx context.Context) error

// ScheduledJob represents a scheduled job
type ScheduledJob struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Cron      string       `json:"cron"`
	NextRun   time.Time    `json:"next_run"`
	LastRun   time.Time    `json:"last_run,omitempty"`
	Status    string       `json:"status"`
	LastError string       `json:"last_error,omitempty"`
	EntryID   cron.EntryID `json:"-"`

	run JobFunc
}

// NewJob builds a job ready for AddJob
func NewJob(name, spec string, run JobFunc) *ScheduledJob {
	return &ScheduledJob{Name: name, Cron: spec, run: run}
}

// TaskScheduler manages scheduled jobs using cron
type TaskScheduler struct {
	cron      *cron.Cron
	ctx       context.Context
	jobs      map[string]*ScheduledJob
	jobsMutex sync.RWMutex
}

// NewTaskScheduler creates a scheduler and registers jobs.
// A job with an invalid cron expression is an error.
func NewTaskScheduler(ctx context.Context, jobs ...*ScheduledJob) (*TaskScheduler, error) {
	logger.Info("Initializing task scheduler")

	ts := &TaskScheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		ctx:  ctx,
		jobs: make(map[string]*ScheduledJob),
	}

	for _, job := range jobs {
		if err := ts.AddJob(job); err != nil {
			return nil, fmt.Errorf("failed to add job %s: %w", job.Name, err)
		}
	}

	logger.Info("Task scheduler initialized", zap.Int("job_count", len(ts.jobs)))
	return ts, nil
}

// Start runs cron and blocks until the scheduler context is cancelled
func (ts *TaskScheduler) Start() error {
	logger.Info("Starting task scheduler")

	ts.cron.Start()

	ts.jobsMutex.Lock()
	for _, job := range ts.jobs {
		ts.updateJobNextRunTime(job)
	}
	ts.jobsMutex.Unlock()

	ts.logScheduledJobs()

	<-ts.ctx.Done()
	logger.Info("Task scheduler context cancelled")
	return nil
}

// Shutdown stops cron and waits for running jobs or ctx
func (ts *TaskScheduler) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down task scheduler")

	cronCtx := ts.cron.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("All scheduled jobs completed")
	case <-ctx.Done():
		logger.Warn("Scheduler shutdown timeout, some jobs may still be running")
	}
	return nil
}

// AddJob registers job with cron
func (ts *TaskScheduler) AddJob(job *ScheduledJob) error {
	if job.run == nil {
		return ErrNoJobFunc
	}

	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	entryID, err := ts.cron.AddFunc(job.Cron, func() { ts.execute(job) })
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	job.EntryID = entryID
	job.Status = JobStatusScheduled
	ts.updateJobNextRunTime(job)
	ts.jobs[job.ID] = job

	logger.Info("Added scheduled job",
		zap.String("job_id", job.ID),
		zap.String("job_name", job.Name),
		zap.String("cron", job.Cron),
		zap.Time("next_run", job.NextRun))
	return nil
}

// RemoveJob removes a scheduled job
func (ts *TaskScheduler) RemoveJob(jobID string) error {
	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	job, exists := ts.jobs[jobID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	ts.cron.Remove(job.EntryID)
	delete(ts.jobs, jobID)

	logger.Info("Removed scheduled job", zap.String("job_id", jobID), zap.String("job_name", job.Name))
	return nil
}

// RunNow executes a job synchronously outside its schedule
func (ts *TaskScheduler) RunNow(jobID string) error {
	ts.jobsMutex.RLock()
	job, exists := ts.jobs[jobID]
	ts.jobsMutex.RUnlock()
	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return ts.execute(job)
}

// GetJobs returns a snapshot of every job sorted by name
func (ts *TaskScheduler) GetJobs() []ScheduledJob {
	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	jobs := make([]ScheduledJob, 0, len(ts.jobs))
	for _, job := range ts.jobs {
		ts.updateJobNextRunTime(job)
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })
	return jobs
}

// GetStatus returns scheduler status
func (ts *TaskScheduler) GetStatus() map[string]interface{} {
	ts.jobsMutex.RLock()
	defer ts.jobsMutex.RUnlock()

	return map[string]interface{}{
		"job_count": len(ts.jobs),
		"entries":   len(ts.cron.Entries()),
		"timestamp": time.Now().UTC(),
	}
}

// execute runs job unless a previous run (cron or RunNow) is still going
func (ts *TaskScheduler) execute(job *ScheduledJob) error {
	ts.jobsMutex.Lock()
	if job.Status == JobStatusRunning {
		ts.jobsMutex.Unlock()
		logger.Warn("Skipping job, previous run still active", zap.String("job_name", job.Name))
		return fmt.Errorf("%w: %s", ErrJobRunning, job.Name)
	}
	logger.Info("Executing scheduled job", zap.String("job_id", job.ID), zap.String("job_name", job.Name))
	job.Status = JobStatusRunning
	job.LastRun = time.Now()
	ts.jobsMutex.Unlock()

	start := time.Now()
	err := job.run(ts.ctx)

	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()
	if err != nil {
		job.Status = JobStatusFailed
		job.LastError = err.Error()
		logger.Error("Scheduled job failed", zap.String("job_name", job.Name), zap.Error(err))
		return err
	}

	job.Status = JobStatusCompleted
	job.LastError = ""
	logger.Info("Scheduled job completed successfully",
		zap.String("job_name", job.Name),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (ts *TaskScheduler) logScheduledJobs() {
	ts.jobsMutex.RLock()
	defer ts.jobsMutex.RUnlock()

	if len(ts.jobs) == 0 {
		logger.Info("No scheduled jobs configured")
		return
	}

	for _, job := range ts.jobs {
		logger.Info("Scheduled job",
			zap.String("job_name", job.Name),
			zap.String("cron", job.Cron),
			zap.Time("next_run", job.NextRun),
			zap.String("status", job.Status))
	}
}

// updateJobNextRunTime must be called with jobsMutex held
func (ts *TaskScheduler) updateJobNextRunTime(job *ScheduledJob) {
	for _, entry := range ts.cron.Entries() {
		if entry.ID == job.EntryID && !entry.Next.IsZero() {
			job.NextRun = entry.Next
			return
		}
	}

	if schedule, err := cron.ParseStandard(job.Cron); err == nil {
		job.NextRun = schedule.Next(time.Now())
	}
}
