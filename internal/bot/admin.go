package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/service"
)

func (b *Bot) handleAdmin(ctx context.Context, r requester) error {
	if !r.isAdmin {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotAuthorized))
	}
	b.sessions.Clear(r.id)
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(r.lang(), i18n.AdminPanel), adminKeyboard(b.texts, r.lang()))
}

func (b *Bot) handleAdminCallback(ctx context.Context, r requester, msgID int, data string) error {
	lang := r.lang()
	back := keyboard(adminBackKeyboard(b.texts, lang))

	switch {
	case data == cbAdminStats:
		stats, err := b.admin.Stats(ctx)
		if err != nil {
			return err
		}
		return b.edit(ctx, r.chatID, msgID, b.admin.FormatStats(lang, stats), back)
	case data == cbAdminUsers:
		users, err := b.admin.Roster(ctx)
		if err != nil {
			return err
		}
		return b.edit(ctx, r.chatID, msgID, b.admin.FormatRoster(lang, users),
			keyboard(userListKeyboard(b.texts, lang, b.admin.Deletable(r.id, users))))
	case data == cbAdminDaily:
		breakdown, err := b.admin.Today(ctx)
		if err != nil {
			return err
		}
		return b.edit(ctx, r.chatID, msgID, b.admin.FormatBreakdown(lang, breakdown), back)
	case data == cbAdminWeekly:
		return b.weeklyOnDemand(ctx, r)
	case data == cbAdminBack:
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.AdminPanel), keyboard(adminKeyboard(b.texts, lang)))
	case strings.HasPrefix(data, cbDeleteUserPrefix):
		return b.withTarget(ctx, r, data, cbDeleteUserPrefix, func(id int64) error { return b.askDelete(ctx, r, msgID, id) })
	case strings.HasPrefix(data, cbConfirmDeletePrefix):
		return b.withTarget(ctx, r, data, cbConfirmDeletePrefix, func(id int64) error { return b.confirmDelete(ctx, r, msgID, id) })
	case strings.HasPrefix(data, cbCancelDeletePrefix):
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.DeleteCancelled), back)
	default:
		return nil
	}
}

func (b *Bot) withTarget(ctx context.Context, r requester, data, prefix string, fn func(id int64) error) error {
	id, err := parseID(data, prefix)
	if err != nil {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.InvalidInput))
	}
	return fn(id)
}

// askDelete shows the confirmation step. The same rules as the deletion itself
// are checked so refused targets never reach it.
func (b *Bot) askDelete(ctx context.Context, r requester, msgID int, targetID int64) error {
	lang := r.lang()
	back := keyboard(adminBackKeyboard(b.texts, lang))
	if targetID == r.id {
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.CannotDeleteSelf), back)
	}
	target, err := b.users.Get(ctx, targetID)
	if errors.Is(err, service.ErrUserNotFound) {
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.UserNotFound), back)
	}
	if err != nil {
		return err
	}
	if b.auth.IsAdmin(targetID, target) {
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.CannotDeleteAdmin), back)
	}
	text := b.texts.Text(lang, i18n.DeleteUserConfirm, target.FirstName, target.LastName)
	return b.edit(ctx, r.chatID, msgID, text, keyboard(deleteConfirmKeyboard(b.texts, lang, targetID)))
}

func (b *Bot) confirmDelete(ctx context.Context, r requester, msgID int, targetID int64) error {
	lang := r.lang()
	back := keyboard(adminBackKeyboard(b.texts, lang))

	target, err := b.users.Delete(ctx, r.id, targetID)
	switch {
	case errors.Is(err, service.ErrCannotDeleteSelf):
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.CannotDeleteSelf), back)
	case errors.Is(err, service.ErrCannotDeleteAdmin):
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.CannotDeleteAdmin), back)
	case errors.Is(err, service.ErrUserNotFound):
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.UserNotFound), back)
	case err != nil:
		return err
	}

	b.sessions.Clear(targetID)
	b.logger(ctx).Info("user deleted", slog.Int64("target_id", targetID))
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.UserDeleted, target.FirstName, target.LastName), back)
}

// weeklyOnDemand runs the weekly pipeline for one admin in the background. A
// per-admin lock rejects a second request while one is running.
func (b *Bot) weeklyOnDemand(ctx context.Context, r requester) error {
	key := "weekly:" + strconv.FormatInt(r.id, 10)
	acquired, err := b.guard.Acquire(ctx, key, b.opts.GenerationLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.GenerationInProgress))
	}

	log := b.logger(ctx)
	if err := b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.GeneratingReport)); err != nil {
		log.Warn("send generating notice", sl.Err(err))
	}

	// The run outlives the update; Bot.Wait covers it.
	base := context.WithoutCancel(ctx)
	b.background.Add(1)
	go func() {
		defer b.background.Done()
		defer func() {
			if err := b.guard.Release(base, key); err != nil {
				log.Warn("release generation lock", sl.Err(err))
			}
		}()

		if err := b.deliverWeekly(base, r); err != nil {
			log.Error("weekly report on demand", sl.Err(err))
			errCtx, cancel := context.WithTimeout(base, b.opts.DeliveryTimeout)
			defer cancel()
			b.replyError(errCtx, r.chatID, r.id)
		}
	}()
	return nil
}

// deliverWeekly generates within the lock TTL and sends under its own
// timeout, so a slow summary still leaves time for delivery.
func (b *Bot) deliverWeekly(ctx context.Context, r requester) error {
	report, genErr := b.generateWeekly(ctx)

	sendCtx, cancel := context.WithTimeout(ctx, b.opts.DeliveryTimeout)
	defer cancel()
	switch {
	case errors.Is(genErr, service.ErrNoReports):
		return b.reply(sendCtx, r.chatID, b.texts.Text(r.lang(), i18n.WeeklyNoData))
	case genErr != nil:
		return genErr
	}
	return b.notifier.DeliverWeekly(sendCtx, r.chatID, report)
}

func (b *Bot) generateWeekly(ctx context.Context) (*service.WeeklyReport, error) {
	genCtx, cancel := context.WithTimeout(ctx, b.opts.GenerationLockTTL)
	defer cancel()
	return b.weekly.Generate(genCtx, model.LanguageRU)
}

type debugJob struct {
	name string
	run  func(ctx context.Context) error
}

// handleDebug force-fires scheduled jobs for admins.
func (b *Bot) handleDebug(ctx context.Context, r requester, command string) error {
	if !r.isAdmin {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotAuthorized))
	}

	var jobs []debugJob
	switch command {
	case "debug_notify":
		for _, shift := range model.WorkTimes {
			jobs = append(jobs, debugJob{
				name: service.JobShiftEnd + " " + shift.Code(),
				run:  func(ctx context.Context) error { return b.notifier.NotifyShiftEnd(ctx, shift) },
			})
		}
		jobs = append(jobs, debugJob{name: service.JobReminders, run: b.notifier.SendReminders})
	case "debug_admin_daily":
		jobs = append(jobs, debugJob{name: service.JobDigest, run: b.notifier.SendDailyDigest})
	case "debug_weekly":
		jobs = append(jobs, debugJob{name: service.JobWeekly, run: b.notifier.SendWeeklyReport})
	}

	lang := r.lang()
	for _, job := range jobs {
		b.logger(ctx).Info("debug job", slog.String("job", job.name))
		var text string
		switch err := job.run(ctx); {
		case errors.Is(err, service.ErrNoReports):
			text = b.texts.Text(lang, i18n.WeeklyNoData)
		case err != nil:
			text = b.texts.Text(lang, i18n.DebugFailed, job.name, err.Error())
		default:
			text = b.texts.Text(lang, i18n.DebugDone, job.name)
		}
		if err := b.reply(ctx, r.chatID, text); err != nil {
			return err
		}
	}
	return nil
}
