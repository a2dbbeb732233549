package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"returnfilers/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	cutoff  time.Time
	removed int64
	err     error
}

func (f *fakePruner) PruneClosed(ctx context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.removed, f.err
}

type fakeSweeper struct{ calls int }

func (f *fakeSweeper) Sweep() int {
	f.calls++
	return 3
}

func TestAddJob_RejectsBadCron(t *testing.T) {
	_, err := NewTaskScheduler(context.Background(), NewJob("bad", "not a cron", func(context.Context) error { return nil }))
	assert.Error(t, err)
}

func TestAddJob_RequiresFunc(t *testing.T) {
	ts, err := NewTaskScheduler(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, ts.AddJob(&ScheduledJob{Name: "empty", Cron: "* * * * *"}), ErrNoJobFunc)
}

func TestRunNow_TracksStatus(t *testing.T) {
	failing := true
	job := NewJob("flaky", "0 * * * *", func(context.Context) error {
		if failing {
			return errors.New("boom")
		}
		return nil
	})

	ts, err := NewTaskScheduler(context.Background(), job)
	require.NoError(t, err)

	jobs := ts.GetJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, JobStatusScheduled, jobs[0].Status)
	assert.False(t, jobs[0].NextRun.IsZero())

	assert.Error(t, ts.RunNow(job.ID))
	jobs = ts.GetJobs()
	assert.Equal(t, JobStatusFailed, jobs[0].Status)
	assert.Equal(t, "boom", jobs[0].LastError)

	failing = false
	require.NoError(t, ts.RunNow(job.ID))
	jobs = ts.GetJobs()
	assert.Equal(t, JobStatusCompleted, jobs[0].Status)
	assert.Empty(t, jobs[0].LastError)
	assert.False(t, jobs[0].LastRun.IsZero())

	assert.ErrorIs(t, ts.RunNow("missing"), ErrJobNotFound)
}

func TestRunNow_RejectsOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	job := NewJob("slow", "0 * * * *", func(context.Context) error {
		close(started)
		<-release
		return nil
	})

	ts, err := NewTaskScheduler(context.Background(), job)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- ts.RunNow(job.ID) }()
	<-started

	assert.ErrorIs(t, ts.RunNow(job.ID), ErrJobRunning)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, JobStatusCompleted, ts.GetJobs()[0].Status)
}

func TestRemoveJob(t *testing.T) {
	job := NewJob("once", "0 * * * *", func(context.Context) error { return nil })
	ts, err := NewTaskScheduler(context.Background(), job)
	require.NoError(t, err)

	require.NoError(t, ts.RemoveJob(job.ID))
	assert.Empty(t, ts.GetJobs())
	assert.ErrorIs(t, ts.RemoveJob(job.ID), ErrJobNotFound)
}

func TestStartAndShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ts, err := NewTaskScheduler(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- ts.Start() }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	assert.NoError(t, ts.Shutdown(shutdownCtx))
}

func TestLeadRetentionJob_UsesRetentionWindow(t *testing.T) {
	pruner := &fakePruner{removed: 4}
	cfg := &config.RetentionConfig{Enabled: true, Cron: "0 3 * * *", Days: 30}

	job := LeadRetentionJob(cfg, pruner)
	require.NoError(t, job.run(context.Background()))

	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, pruner.cutoff, time.Minute)
}

func TestLeadRetentionJob_PropagatesError(t *testing.T) {
	pruner := &fakePruner{err: errors.New("locked")}
	job := LeadRetentionJob(&config.RetentionConfig{Cron: "0 3 * * *", Days: 1}, pruner)
	assert.Error(t, job.run(context.Background()))
}

func TestDefaultJobs(t *testing.T) {
	cfg := config.Default()
	cfg.Retention.Enabled = false

	jobs := DefaultJobs(cfg, &fakePruner{}, &fakeSweeper{})
	require.Len(t, jobs, 1)
	assert.Equal(t, RateLimitSweepName, jobs[0].Name)

	cfg.Retention.Enabled = true
	jobs = DefaultJobs(cfg, &fakePruner{}, nil)
	require.Len(t, jobs, 1)
	assert.Equal(t, LeadRetentionJobName, jobs[0].Name)
}

func TestRateLimitSweepJob(t *testing.T) {
	s := &fakeSweeper{}
	require.NoError(t, RateLimitSweepJob(s).run(context.Background()))
	assert.Equal(t, 1, s.calls)
}
