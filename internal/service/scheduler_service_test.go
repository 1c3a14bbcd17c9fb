package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-report-bot/internal/lib/sl"
)

func TestBuildSpecs(t *testing.T) {
	spec, err := buildDailySpec("18:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 18 * * *", spec)

	spec, err = buildDailySpec("9:05")
	require.NoError(t, err)
	assert.Equal(t, "0 5 9 * * *", spec)

	spec, err = buildWeeklySpec(time.Friday, "00:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 * * 5", spec)

	_, err = buildDailySpec("25:00")
	assert.Error(t, err)
	_, err = buildWeeklySpec(time.Weekday(7), "10:00")
	assert.Error(t, err)
}

func TestSchedulerRegistersJobs(t *testing.T) {
	s := NewSchedulerService(baku, sl.Discard(), time.Second)
	noop := func(context.Context) error { return nil }

	_, err := s.ScheduleDaily(JobShiftEnd, "18:00", noop)
	require.NoError(t, err)
	_, err = s.ScheduleWeekly(JobWeekly, time.Friday, "00:00", noop)
	require.NoError(t, err)
	_, err = s.ScheduleInterval(JobReminders, time.Hour, noop)
	require.NoError(t, err)

	_, err = s.ScheduleInterval(JobReminders, 0, noop)
	assert.Error(t, err)
	_, err = s.ScheduleDaily(JobDigest, "noon", noop)
	assert.Error(t, err)

	assert.Equal(t, 3, s.Entries())
	s.Start()
	s.Stop()
}

func TestRunNow(t *testing.T) {
	s := NewSchedulerService(baku, sl.Discard(), 50*time.Millisecond)

	err := s.RunNow(context.Background(), JobWeekly, func(context.Context) error { return ErrNoReports })
	assert.ErrorIs(t, err, ErrNoReports)

	boom := errors.New("boom")
	err = s.RunNow(context.Background(), JobDigest, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = s.RunNow(context.Background(), JobReminders, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "runs carry the job timeout")
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
