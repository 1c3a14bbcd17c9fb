package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/metrics"
	"daily-report-bot/internal/model"
)

// ReportService enforces the one-report-per-day and end-of-shift rules.
type ReportService struct {
	reports   ReportStore
	reminders ReminderLog
	clock     clockwork.Clock
	loc       *time.Location
	minLength int
	log       *slog.Logger
}

func NewReportService(reports ReportStore, reminders ReminderLog, clock clockwork.Clock, loc *time.Location, minLength int, log *slog.Logger) *ReportService {
	return &ReportService{
		reports:   reports,
		reminders: reminders,
		clock:     clock,
		loc:       loc,
		minLength: minLength,
		log:       log,
	}
}

func (s *ReportService) MinLength() int {
	return s.minLength
}

// Today is the current calendar day in the org timezone.
func (s *ReportService) Today() string {
	return model.Day(s.clock.Now(), s.loc)
}

// ShiftOver reports whether user's shift has ended today.
func (s *ReportService) ShiftOver(user *model.User, now time.Time) bool {
	local := now.In(s.loc)
	hour, minute := user.WorkTime.End()
	end := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, s.loc)
	return !local.Before(end)
}

func (s *ReportService) SubmittedToday(ctx context.Context, user *model.User) (bool, error) {
	return s.reports.Exists(ctx, user.TelegramID, s.Today())
}

// Begin checks whether user may start a report now. It returns *TooEarlyError
// before the shift ends and ErrAlreadySubmitted if today's report exists.
func (s *ReportService) Begin(ctx context.Context, user *model.User) error {
	if !s.ShiftOver(user, s.clock.Now()) {
		return &TooEarlyError{ShiftEnd: user.WorkTime.EndLabel()}
	}
	done, err := s.SubmittedToday(ctx, user)
	if err != nil {
		return err
	}
	if done {
		return ErrAlreadySubmitted
	}
	return nil
}

// SubmitNoTasks records that user had no tasks today.
func (s *ReportService) SubmitNoTasks(ctx context.Context, user *model.User) (*model.DailyReport, error) {
	return s.create(ctx, user, nil)
}

// SubmitText validates and stores today's report text.
func (s *ReportService) SubmitText(ctx context.Context, user *model.User, text string) (*model.DailyReport, error) {
	clean, err := ValidateReportText(text, s.minLength)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, user, &clean)
}

func (s *ReportService) create(ctx context.Context, user *model.User, text *string) (*model.DailyReport, error) {
	now := s.clock.Now()
	day := model.Day(now, s.loc)

	reminded, err := s.reminders.Count(ctx, user.TelegramID, day)
	if err != nil {
		s.log.Warn("count reminders", slog.Int64("user_id", user.TelegramID), sl.Err(err))
		reminded = 0
	}

	report := &model.DailyReport{
		UserID:        user.ID,
		TelegramID:    user.TelegramID,
		ReportDay:     day,
		ReportDate:    model.StartOfDay(now, s.loc).UTC(),
		ReportText:    text,
		HasTasks:      text != nil,
		SubmittedAt:   now.UTC(),
		ReminderCount: reminded,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("submit report: %w", err)
	}
	metrics.ReportsSubmitted.WithLabelValues(fmt.Sprint(report.HasTasks)).Inc()
	return report, nil
}
