package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"daily-report-bot/internal/config"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/metrics"
)

// Job is a scheduled unit of work. Its context carries the per-run timeout.
type Job func(ctx context.Context) error

// SchedulerService wraps cron-based jobs.
type SchedulerService struct {
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration
}

func NewSchedulerService(loc *time.Location, log *slog.Logger, timeout time.Duration) *SchedulerService {
	cronLog := cronLogger{log: log}
	return &SchedulerService{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		log:     log,
		timeout: timeout,
	}
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *SchedulerService) ScheduleDaily(name, timeStr string, job Job) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.add(name, spec, job)
}

// ScheduleWeekly registers a job on weekday (0 is Sunday) at HH:MM.
func (s *SchedulerService) ScheduleWeekly(name string, weekday time.Weekday, timeStr string, job Job) (cron.EntryID, error) {
	spec, err := buildWeeklySpec(weekday, timeStr)
	if err != nil {
		return 0, err
	}
	return s.add(name, spec, job)
}

// ScheduleInterval registers a periodic job every given duration.
func (s *SchedulerService) ScheduleInterval(name string, interval time.Duration, job Job) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	// Convert to cron spec: every N seconds.
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return s.add(name, fmt.Sprintf("@every %ds", seconds), job)
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Entries returns the number of registered jobs.
func (s *SchedulerService) Entries() int {
	return len(s.cron.Entries())
}

// RunNow executes job synchronously with the same logging and metrics as a
// scheduled run.
func (s *SchedulerService) RunNow(ctx context.Context, name string, job Job) error {
	return s.run(ctx, name, job)
}

func (s *SchedulerService) add(name, spec string, job Job) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, func() {
		_ = s.run(context.Background(), name, job)
	})
	if err != nil {
		return 0, fmt.Errorf("schedule %s (%s): %w", name, spec, err)
	}
	s.log.Info("job scheduled", slog.String("job", name), slog.String("spec", spec))
	return id, nil
}

func (s *SchedulerService) run(parent context.Context, name string, job Job) error {
	ctx := parent
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.timeout)
		defer cancel()
	}

	log := s.log.With(slog.String("job", name), slog.String("run_id", uuid.NewString()))
	start := time.Now()
	log.Info("job started")

	err := job(ctx)
	metrics.JobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	switch {
	case err == nil:
		metrics.JobRuns.WithLabelValues(name, metrics.StatusOK).Inc()
		log.Info("job finished", slog.Duration("took", time.Since(start)))
	case errors.Is(err, ErrNoReports):
		metrics.JobRuns.WithLabelValues(name, metrics.StatusSkipped).Inc()
		log.Info("job skipped", sl.Err(err))
	default:
		metrics.JobRuns.WithLabelValues(name, metrics.StatusError).Inc()
		log.Error("job failed", sl.Err(err))
	}
	return err
}

func buildDailySpec(timeStr string) (string, error) {
	hour, minute, err := config.ParseClock(timeStr)
	if err != nil {
		return "", err
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}

func buildWeeklySpec(weekday time.Weekday, timeStr string) (string, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return "", fmt.Errorf("invalid weekday %d", weekday)
	}
	hour, minute, err := config.ParseClock(timeStr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0 %d %d * * %d", minute, hour, int(weekday)), nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append([]interface{}{sl.Err(err)}, keysAndValues...)...)
}
