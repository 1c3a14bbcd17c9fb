package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/metrics"
	"daily-report-bot/internal/model"
)

// Job names used in logs and metrics.
const (
	JobShiftEnd  = "shift_end"
	JobReminders = "reminders"
	JobDigest    = "daily_digest"
	JobWeekly    = "weekly_report"
)

// Messenger delivers outbound messages.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	// SendReportPrompt sends text with the report-type keyboard in lang.
	SendReportPrompt(ctx context.Context, chatID int64, lang model.Language, text string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error
}

// NotificationOptions tune reminder behaviour.
type NotificationOptions struct {
	Cooldown  time.Duration
	QuietHour int
}

// NotificationService implements the scheduled jobs. Each job isolates failures
// per recipient: one failed send is logged and the loop moves on.
type NotificationService struct {
	users     UserStore
	reports   *ReportService
	admin     *AdminService
	weekly    *WeeklyReportService
	auth      *AuthService
	reminders ReminderLog
	messenger Messenger
	texts     *i18n.Translator
	clock     clockwork.Clock
	loc       *time.Location
	opts      NotificationOptions
	log       *slog.Logger
}

func NewNotificationService(
	users UserStore,
	reports *ReportService,
	admin *AdminService,
	weekly *WeeklyReportService,
	auth *AuthService,
	reminders ReminderLog,
	messenger Messenger,
	texts *i18n.Translator,
	clock clockwork.Clock,
	loc *time.Location,
	opts NotificationOptions,
	log *slog.Logger,
) *NotificationService {
	if opts.Cooldown <= 0 {
		opts.Cooldown = time.Hour
	}
	if opts.QuietHour <= 0 || opts.QuietHour > 24 {
		opts.QuietHour = 23
	}
	return &NotificationService{
		users:     users,
		reports:   reports,
		admin:     admin,
		weekly:    weekly,
		auth:      auth,
		reminders: reminders,
		messenger: messenger,
		texts:     texts,
		clock:     clock,
		loc:       loc,
		opts:      opts,
		log:       log,
	}
}

// NotifyShiftEnd prompts users of shift who have not reported today.
func (s *NotificationService) NotifyShiftEnd(ctx context.Context, shift model.WorkTime) error {
	users, err := s.users.ListActiveByWorkTime(ctx, shift)
	if err != nil {
		return err
	}

	sent := 0
	for i := range users {
		if err := ctx.Err(); err != nil {
			return err
		}
		user := &users[i]
		if s.auth.IsAdmin(user.TelegramID, user) {
			continue
		}
		done, err := s.reports.SubmittedToday(ctx, user)
		if err != nil {
			s.log.Error("check report", slog.Int64("user_id", user.TelegramID), sl.Err(err))
			continue
		}
		if done {
			continue
		}
		text := s.texts.Text(user.Language, i18n.ReportRequest)
		if s.deliver(JobShiftEnd, user.TelegramID, s.messenger.SendReportPrompt(ctx, user.TelegramID, user.Language, text)) {
			sent++
		}
	}
	s.log.Info("shift end notifications sent", slog.String("shift", string(shift)), slog.Int("sent", sent))
	return nil
}

// SendReminders nudges users whose shift is over, who have not reported and who
// were not reminded within the cooldown. Nothing is sent during quiet hours.
func (s *NotificationService) SendReminders(ctx context.Context) error {
	now := s.clock.Now()
	if now.In(s.loc).Hour() >= s.opts.QuietHour {
		s.log.Debug("reminders skipped in quiet hours")
		return nil
	}

	users, err := s.users.ListActive(ctx)
	if err != nil {
		return err
	}

	day := model.Day(now, s.loc)
	sent := 0
	for i := range users {
		if err := ctx.Err(); err != nil {
			return err
		}
		user := &users[i]
		if s.auth.IsAdmin(user.TelegramID, user) || !s.reports.ShiftOver(user, now) {
			continue
		}
		done, err := s.reports.SubmittedToday(ctx, user)
		if err != nil {
			s.log.Error("check report", slog.Int64("user_id", user.TelegramID), sl.Err(err))
			continue
		}
		if done {
			continue
		}
		last, ok, err := s.reminders.Last(ctx, user.TelegramID)
		if err != nil {
			s.log.Error("read reminder log", slog.Int64("user_id", user.TelegramID), sl.Err(err))
			continue
		}
		if ok && now.Sub(last) < s.opts.Cooldown {
			continue
		}

		text := s.texts.Text(user.Language, i18n.Reminder)
		if !s.deliver(JobReminders, user.TelegramID, s.messenger.SendReportPrompt(ctx, user.TelegramID, user.Language, text)) {
			continue
		}
		sent++
		if err := s.reminders.Record(ctx, user.TelegramID, now, day); err != nil {
			s.log.Error("record reminder", slog.Int64("user_id", user.TelegramID), sl.Err(err))
		}
	}
	s.log.Info("reminders sent", slog.Int("sent", sent))
	return nil
}

// SendDailyDigest sends today's breakdown to every allow-listed admin.
func (s *NotificationService) SendDailyDigest(ctx context.Context) error {
	breakdown, err := s.admin.Today(ctx)
	if err != nil {
		return err
	}
	for _, adminID := range s.auth.AdminIDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lang := s.languageOf(ctx, adminID)
		s.deliver(JobDigest, adminID, s.messenger.SendText(ctx, adminID, s.admin.FormatBreakdown(lang, breakdown)))
	}
	return nil
}

// SendWeeklyReport generates the weekly report and sends it to every allow-listed
// admin. A week without reports returns ErrNoReports and sends nothing.
func (s *NotificationService) SendWeeklyReport(ctx context.Context) error {
	report, err := s.weekly.Generate(ctx, model.LanguageRU)
	if err != nil {
		return err
	}
	for _, adminID := range s.auth.AdminIDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.DeliverWeekly(ctx, adminID, report); err != nil {
			s.log.Error("deliver weekly report", slog.Int64("admin_id", adminID), sl.Err(err))
		}
	}
	return nil
}

// DeliverWeekly sends the header and both documents to one chat.
func (s *NotificationService) DeliverWeekly(ctx context.Context, chatID int64, report *WeeklyReport) error {
	header := s.texts.Text(model.LanguageRU, i18n.WeeklyReportHeader, report.From, report.To)
	if !s.deliver(JobWeekly, chatID, s.messenger.SendText(ctx, chatID, header)) {
		return fmt.Errorf("send weekly header to %d failed", chatID)
	}
	var errs []error
	if err := s.messenger.SendDocument(ctx, chatID, report.DOCXName, report.DOCX); err != nil {
		errs = append(errs, fmt.Errorf("send docx: %w", err))
	}
	if err := s.messenger.SendDocument(ctx, chatID, report.PDFName, report.PDF); err != nil {
		errs = append(errs, fmt.Errorf("send pdf: %w", err))
	}
	return errors.Join(errs...)
}

// Broadcast sends text to every allow-listed admin, e.g. start and stop notices.
func (s *NotificationService) Broadcast(ctx context.Context, key string) {
	for _, adminID := range s.auth.AdminIDs() {
		lang := s.languageOf(ctx, adminID)
		if err := s.messenger.SendText(ctx, adminID, s.texts.Text(lang, key)); err != nil {
			s.log.Warn("admin notice failed", slog.Int64("admin_id", adminID), sl.Err(err))
		}
	}
}

func (s *NotificationService) languageOf(ctx context.Context, telegramID int64) model.Language {
	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return model.LanguageRU
	}
	return user.Language
}

func (s *NotificationService) deliver(job string, chatID int64, err error) bool {
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(job, metrics.StatusError).Inc()
		s.log.Warn("send failed", slog.String("job", job), slog.Int64("chat_id", chatID), sl.Err(err))
		return false
	}
	metrics.NotificationsSent.WithLabelValues(job, metrics.StatusOK).Inc()
	return true
}
