package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopJob struct {
	schedule Schedule
}

func (j *noopJob) Name() string                      { return "noop" }
func (j *noopJob) Execute(ctx context.Context) error { return nil }
func (j *noopJob) Schedule() Schedule                { return j.schedule }

func TestNewSchedulerServiceHonorsReferenceZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	service := NewSchedulerService("08:00", tokyo)

	// "08:00" must mean 08:00 in the configured zone, not UTC.
	assert.Equal(t, tokyo, service.location)
	assert.Equal(t, tokyo, service.scheduler.Location())
}

func TestNewSchedulerServiceDefaultsToUTC(t *testing.T) {
	service := NewSchedulerService("08:00", nil)

	assert.Equal(t, time.UTC, service.location)
}

func TestAddJobRegistersDailyReminder(t *testing.T) {
	service := NewSchedulerService("08:00", time.UTC)

	err := service.AddJob(&noopJob{schedule: DailyReminder})
	require.NoError(t, err)

	assert.Len(t, service.jobs, 1)
}
