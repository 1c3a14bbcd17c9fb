package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-report-bot/internal/model"
)

func TestReportGatedByShiftEnd(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, at(14, 15, 0))
	ivan := e.register(t, 1, "Иван", model.ShiftA)
	anar := e.register(t, 2, "Anar", model.ShiftB)

	var early *TooEarlyError
	err := e.reportSvc.Begin(ctx, ivan)
	require.ErrorAs(t, err, &early)
	assert.Equal(t, "18:00", early.ShiftEnd)

	exists, err := e.reports.Exists(ctx, 1, "2026-10-14")
	require.NoError(t, err)
	assert.False(t, exists)

	e.clock.Advance(3*time.Hour + 30*time.Minute) // 18:30
	assert.NoError(t, e.reportSvc.Begin(ctx, ivan))

	err = e.reportSvc.Begin(ctx, anar)
	require.ErrorAs(t, err, &early)
	assert.Equal(t, "19:00", early.ShiftEnd)

	e.clock.Advance(30 * time.Minute) // 19:00 sharp
	assert.NoError(t, e.reportSvc.Begin(ctx, anar))
}

func TestSubmitNoTasksThenAlreadySubmitted(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, at(14, 19, 5))
	anar := e.register(t, 2, "Anar", model.ShiftB)

	report, err := e.reportSvc.SubmitNoTasks(ctx, anar)
	require.NoError(t, err)
	assert.False(t, report.HasTasks)
	assert.Nil(t, report.ReportText)
	assert.Equal(t, "2026-10-14", report.ReportDay)

	stored, err := e.reports.Find(ctx, 2, "2026-10-14")
	require.NoError(t, err)
	assert.False(t, stored.HasTasks)
	assert.Nil(t, stored.ReportText)

	assert.ErrorIs(t, e.reportSvc.Begin(ctx, anar), ErrAlreadySubmitted)

	_, err = e.reportSvc.SubmitText(ctx, anar, "Отдельный отчет после первого")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	count, err := e.reports.CountBetween(ctx, "2026-10-14", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitText(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, at(14, 18, 30))
	ivan := e.register(t, 1, "Иван", model.ShiftA)

	_, err := e.reportSvc.SubmitText(ctx, ivan, "коротко")
	assert.ErrorIs(t, err, ErrReportTooShort)
	_, err = e.reportSvc.SubmitText(ctx, ivan, "   ")
	assert.ErrorIs(t, err, ErrReportEmpty)

	done, err := e.reportSvc.SubmittedToday(ctx, ivan)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, e.reminders.Record(ctx, 1, at(14, 18, 0), "2026-10-14"))
	require.NoError(t, e.reminders.Record(ctx, 1, at(14, 19, 0), "2026-10-13"))
	require.NoError(t, e.reminders.Record(ctx, 1, at(14, 19, 0), "2026-10-14"))

	report, err := e.reportSvc.SubmitText(ctx, ivan, "  Сделал вёрстку главной страницы  ")
	require.NoError(t, err)
	require.NotNil(t, report.ReportText)
	assert.Equal(t, "Сделал вёрстку главной страницы", *report.ReportText)
	assert.True(t, report.HasTasks)
	assert.Equal(t, 1, report.ReminderCount)

	done, err = e.reportSvc.SubmittedToday(ctx, ivan)
	require.NoError(t, err)
	assert.True(t, done)
}

type brokenReminderLog struct {
	*MemoryReminderLog
}

func (brokenReminderLog) Count(context.Context, int64, string) (int, error) {
	return 0, errors.New("redis: connection refused")
}

func TestSubmitSurvivesReminderLogFailure(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, at(14, 18, 30))
	ivan := e.register(t, 1, "Иван", model.ShiftA)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewReportService(e.reports, brokenReminderLog{NewMemoryReminderLog()}, e.clock, baku, 10, log)

	report, err := svc.SubmitText(ctx, ivan, "Сделал вёрстку главной страницы")
	require.NoError(t, err)
	assert.Equal(t, 0, report.ReminderCount)
	assert.Contains(t, buf.String(), "count reminders")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestReportDayUsesOrgTimezone(t *testing.T) {
	ctx := context.Background()
	// 23:30 local is 19:30 UTC on the same day; 00:30 local belongs to the next day.
	e := newTestEnv(t, at(14, 23, 30))
	ivan := e.register(t, 1, "Иван", model.ShiftA)

	report, err := e.reportSvc.SubmitNoTasks(ctx, ivan)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", report.ReportDay)

	e.clock.Advance(time.Hour)
	assert.Equal(t, "2026-10-15", e.reportSvc.Today())
	var early *TooEarlyError
	assert.ErrorAs(t, e.reportSvc.Begin(ctx, ivan), &early)
}
