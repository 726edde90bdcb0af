package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
	err      error
	runs     int
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return j.schedule }
func (j *stubJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func TestScheduler_AddJob(t *testing.T) {
	s := New(logger.NewNop())

	job := &stubJob{name: "refresh", schedule: "0 */5 * * * *"}
	require.NoError(t, s.AddJob(job))

	// Duplicate names are rejected
	err := s.AddJob(&stubJob{name: "refresh", schedule: "@hourly"})
	assert.Error(t, err)
}

func TestScheduler_AddJob_InvalidSchedule(t *testing.T) {
	s := New(logger.NewNop())

	err := s.AddJob(&stubJob{name: "bad", schedule: "not a cron expr"})

	assert.Error(t, err)
}

func TestScheduler_RunJob_NotFound(t *testing.T) {
	s := New(logger.NewNop())

	assert.Error(t, s.RunJob("missing"))
}

func TestScheduler_RunJobRecordsHistory(t *testing.T) {
	s := New(logger.NewNop())
	s.maxRetries = 0

	job := &stubJob{name: "refresh", schedule: "0 */5 * * * *"}
	require.NoError(t, s.AddJob(job))

	// Run synchronously to avoid sleeping through cron ticks
	s.runJob(job)

	history, err := s.GetJobHistory("refresh")
	require.NoError(t, err)
	require.Len(t, history.Results, 1)
	assert.True(t, history.Results[0].Success)
	assert.Equal(t, 1, job.runs)
	assert.Equal(t, 1.0, history.GetSuccessRate())
}

func TestScheduler_RunJobRetriesOnFailure(t *testing.T) {
	s := New(logger.NewNop())
	s.maxRetries = 2
	s.retryDelay = 0

	job := &stubJob{name: "refresh", schedule: "0 */5 * * * *", err: errors.New("fetch failed")}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)

	assert.Equal(t, 3, job.runs, "initial attempt plus two retries")

	history, err := s.GetJobHistory("refresh")
	require.NoError(t, err)
	require.Len(t, history.Results, 1)
	assert.False(t, history.Results[0].Success)
	assert.Contains(t, history.Results[0].Error, "fetch failed")
}

func TestJobHistory_Trimming(t *testing.T) {
	h := &JobHistory{}

	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "refresh", Success: i%2 == 0})
	}

	assert.Len(t, h.Results, 100)
	assert.Len(t, h.GetLatestResults(10), 10)
	assert.Len(t, h.GetLatestResults(500), 100)
}
