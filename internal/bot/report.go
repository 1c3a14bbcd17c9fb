package bot

import (
	"context"
	"errors"
	"log/slog"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/service"
	"daily-report-bot/internal/session"
)

// reportBlocked returns the message explaining why r cannot report now, or ""
// when a report may be started.
func (b *Bot) reportBlocked(ctx context.Context, r requester) (string, error) {
	err := b.reports.Begin(ctx, r.user)
	var early *service.TooEarlyError
	switch {
	case err == nil:
		return "", nil
	case errors.As(err, &early):
		return b.texts.Text(r.lang(), i18n.ReportTooEarly, early.ShiftEnd), nil
	case errors.Is(err, service.ErrAlreadySubmitted):
		return b.texts.Text(r.lang(), i18n.ReportAlreadySubmitted), nil
	default:
		return "", err
	}
}

func (b *Bot) handleReport(ctx context.Context, r requester) error {
	b.sessions.Clear(r.id)
	blocked, err := b.reportBlocked(ctx, r)
	if err != nil {
		return err
	}
	if blocked != "" {
		return b.reply(ctx, r.chatID, blocked)
	}
	b.sessions.Set(r.id, session.Conversation{State: session.StateReportTypeSelect})
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportTypeSelect), reportTypeKeyboard(b.texts, r.lang()))
}

// reportHasTasks moves to text entry. The prompt may come from a scheduled
// notification, so the entry checks run again.
func (b *Bot) reportHasTasks(ctx context.Context, r requester, msgID int) error {
	blocked, err := b.reportBlocked(ctx, r)
	if err != nil {
		return err
	}
	if blocked != "" {
		b.sessions.Clear(r.id)
		return b.edit(ctx, r.chatID, msgID, blocked, nil)
	}
	b.sessions.Set(r.id, session.Conversation{State: session.StateReportText})
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.EnterReportText), keyboard(reportTextKeyboard(b.texts, r.lang())))
}

func (b *Bot) reportNoTasks(ctx context.Context, r requester, msgID int) error {
	blocked, err := b.reportBlocked(ctx, r)
	if err != nil {
		return err
	}
	b.sessions.Clear(r.id)
	if blocked != "" {
		return b.edit(ctx, r.chatID, msgID, blocked, nil)
	}

	_, err = b.reports.SubmitNoTasks(ctx, r.user)
	if errors.Is(err, service.ErrAlreadySubmitted) {
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.ReportAlreadySubmitted), nil)
	}
	if err != nil {
		return err
	}
	b.logger(ctx).Info("report submitted", slog.Bool("has_tasks", false))
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.ReportNoTasks), nil)
}

func (b *Bot) cancelReport(ctx context.Context, r requester, msgID int) error {
	b.sessions.Clear(r.id)
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.ReportCancelled), nil)
}

func (b *Bot) showExample(ctx context.Context, r requester, msgID int, kind string) error {
	key := i18n.ExampleKey(kind)
	if !b.texts.Has(model.LanguageRU, key) {
		return nil
	}
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), key), keyboard(examplesKeyboard(b.texts, r.lang())))
}

// reportText stores the typed report. Validation failures re-prompt and keep
// the state.
func (b *Bot) reportText(ctx context.Context, r requester, text string) error {
	if r.user == nil {
		b.sessions.Clear(r.id)
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotRegistered))
	}
	// A conversation can outlive the day it started on.
	blocked, err := b.reportBlocked(ctx, r)
	if err != nil {
		return err
	}
	if blocked != "" {
		b.sessions.Clear(r.id)
		return b.reply(ctx, r.chatID, blocked)
	}

	report, err := b.reports.SubmitText(ctx, r.user, text)
	switch {
	case errors.Is(err, service.ErrReportEmpty):
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportEmpty))
	case errors.Is(err, service.ErrReportTooShort):
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportTooShort, b.reports.MinLength()))
	case errors.Is(err, service.ErrAlreadySubmitted):
		b.sessions.Clear(r.id)
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportAlreadySubmitted))
	case err != nil:
		return err
	}

	b.sessions.Clear(r.id)
	b.logger(ctx).Info("report submitted", slog.Bool("has_tasks", true), slog.Int("reminders", report.ReminderCount))
	return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportSubmitted))
}
