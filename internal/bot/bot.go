package bot

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/metrics"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/service"
	"daily-report-bot/internal/session"
)

// Deps are the services behind the bot's flows.
type Deps struct {
	Users    *service.UserService
	Reports  *service.ReportService
	Admin    *service.AdminService
	Weekly   *service.WeeklyReportService
	Notifier *service.NotificationService
	Auth     *service.AuthService
	Guard    service.GenerationGuard
	Sessions *session.Store
	Texts    *i18n.Translator
	Clock    clockwork.Clock
}

type Options struct {
	// CallbackMaxAge rejects buttons on messages older than this. Zero disables.
	CallbackMaxAge    time.Duration
	GenerationLockTTL time.Duration
	// DeliveryTimeout bounds sending a generated weekly report.
	DeliveryTimeout time.Duration
}

// Bot routes Telegram updates to the registration, report, profile and admin flows.
type Bot struct {
	api    API
	sender *Sender

	users    *service.UserService
	reports  *service.ReportService
	admin    *service.AdminService
	weekly   *service.WeeklyReportService
	notifier *service.NotificationService
	auth     *service.AuthService
	guard    service.GenerationGuard
	sessions *session.Store
	texts    *i18n.Translator
	clock    clockwork.Clock
	opts     Options
	log      *slog.Logger

	background sync.WaitGroup
}

func New(api API, sender *Sender, deps Deps, opts Options, log *slog.Logger) *Bot {
	if opts.GenerationLockTTL <= 0 {
		opts.GenerationLockTTL = 2 * time.Minute
	}
	if opts.DeliveryTimeout <= 0 {
		opts.DeliveryTimeout = time.Minute
	}
	return &Bot{
		api:      api,
		sender:   sender,
		users:    deps.Users,
		reports:  deps.Reports,
		admin:    deps.Admin,
		weekly:   deps.Weekly,
		notifier: deps.Notifier,
		auth:     deps.Auth,
		guard:    deps.Guard,
		sessions: deps.Sessions,
		texts:    deps.Texts,
		clock:    deps.Clock,
		opts:     opts,
		log:      log.With(slog.String("component", "bot")),
	}
}

// Start polls updates until ctx is cancelled, then waits for background work.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for {
		select {
		case <-ctx.Done():
			b.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				b.Wait()
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// Wait blocks until background work (weekly generation) has finished.
func (b *Bot) Wait() {
	b.background.Wait()
}

type loggerKey struct{}

func (b *Bot) logger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return b.log
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	kind, userID, chatID := describe(update)
	if kind == "" {
		return
	}

	log := b.log.With(
		slog.Int("update_id", update.UpdateID),
		slog.Int64("user_id", userID),
		slog.String("request_id", uuid.NewString()),
	)
	ctx = context.WithValue(ctx, loggerKey{}, log)

	status := metrics.StatusOK
	defer func() {
		if r := recover(); r != nil {
			status = metrics.StatusError
			log.Error("handler panic", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
			b.replyError(ctx, chatID, userID)
		}
		metrics.UpdatesHandled.WithLabelValues(kind, status).Inc()
	}()

	var err error
	switch kind {
	case "callback":
		err = b.handleCallback(ctx, update.CallbackQuery)
	case "message":
		err = b.handleMessage(ctx, update.Message)
	}
	if err != nil {
		status = metrics.StatusError
		log.Error("handle update", slog.String("kind", kind), sl.Err(err))
		b.replyError(ctx, chatID, userID)
	}
}

func describe(update tgbotapi.Update) (kind string, userID, chatID int64) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
			return "", 0, 0
		}
		return "callback", cb.From.ID, cb.Message.Chat.ID
	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || msg.Chat == nil || !msg.Chat.IsPrivate() {
			return "", 0, 0
		}
		return "message", msg.From.ID, msg.Chat.ID
	}
	return "", 0, 0
}

// requester is the caller of one update: the stored user if registered and the
// admin flag evaluated once.
type requester struct {
	id      int64
	chatID  int64
	user    *model.User
	isAdmin bool
	conv    session.Conversation
}

func (r requester) lang() model.Language {
	if r.user != nil {
		return r.user.Language
	}
	if r.conv.Registration.Language != "" {
		return r.conv.Registration.Language
	}
	return model.LanguageRU
}

func (b *Bot) requester(ctx context.Context, userID, chatID int64) (requester, error) {
	user, err := b.users.Get(ctx, userID)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		return requester{}, err
	}
	return requester{
		id:      userID,
		chatID:  chatID,
		user:    user,
		isAdmin: b.auth.IsAdmin(userID, user),
		conv:    b.sessions.Get(userID),
	}, nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	r, err := b.requester(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		return err
	}

	if msg.IsCommand() {
		b.logger(ctx).Info("command", slog.String("command", msg.Command()))
		return b.handleCommand(ctx, r, msg)
	}

	text := strings.TrimSpace(msg.Text)
	if key, ok := b.texts.MenuKey(text); ok {
		return b.handleMenu(ctx, r, key)
	}

	switch r.conv.State {
	case session.StateFirstName, session.StateLastName:
		return b.registrationName(ctx, r, text)
	case session.StateReportText:
		return b.reportText(ctx, r, text)
	case session.StateEditFirstName, session.StateEditLastName:
		return b.profileName(ctx, r, text)
	case session.StateNone:
		if r.user == nil {
			return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotRegistered))
		}
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.UnknownMessage))
	default:
		// The step expects a button press.
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.InvalidInput))
	}
}

func (b *Bot) handleCommand(ctx context.Context, r requester, msg *tgbotapi.Message) error {
	command := msg.Command()
	switch command {
	case "start":
		return b.handleStart(ctx, r)
	case "cancel":
		return b.handleCancel(ctx, r)
	}

	if r.user == nil {
		key := i18n.NotRegistered
		if r.conv.State.Registering() {
			key = i18n.FinishRegistrationFirst
		}
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), key))
	}

	switch command {
	case "report":
		return b.handleReport(ctx, r)
	case "profile":
		return b.handleProfile(ctx, r)
	case "help":
		return b.handleHelp(ctx, r)
	case "admin":
		return b.handleAdmin(ctx, r)
	case "debug_notify", "debug_admin_daily", "debug_weekly":
		return b.handleDebug(ctx, r, command)
	default:
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.UnknownMessage))
	}
}

// handleMenu serves the reply-keyboard buttons. They supersede any conversation.
func (b *Bot) handleMenu(ctx context.Context, r requester, key string) error {
	if r.user == nil {
		k := i18n.NotRegistered
		if r.conv.State.Registering() {
			k = i18n.FinishRegistrationFirst
		}
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), k))
	}
	switch key {
	case i18n.MenuProfile:
		return b.handleProfile(ctx, r)
	case i18n.MenuReport:
		return b.handleReport(ctx, r)
	case i18n.MenuAdmin:
		return b.handleAdmin(ctx, r)
	default:
		return b.handleHelp(ctx, r)
	}
}

// handleCancel drops the conversation. A cancelled report or profile edit
// returns to where it started.
func (b *Bot) handleCancel(ctx context.Context, r requester) error {
	b.sessions.Clear(r.id)
	if r.user == nil {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.Cancelled))
	}
	switch {
	case r.conv.State.Reporting():
		return b.replyMarkup(ctx, r.chatID, b.texts.Text(r.lang(), i18n.ReportCancelled), mainMenuKeyboard(b.texts, r.lang(), r.isAdmin))
	case r.conv.State.Editing():
		if err := b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.Cancelled)); err != nil {
			return err
		}
		return b.handleProfile(ctx, r)
	}
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(r.lang(), i18n.Cancelled), mainMenuKeyboard(b.texts, r.lang(), r.isAdmin))
}

func (b *Bot) handleHelp(ctx context.Context, r requester) error {
	b.sessions.Clear(r.id)
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(r.lang(), i18n.HelpText), mainMenuKeyboard(b.texts, r.lang(), r.isAdmin))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if b.stale(cb) {
		b.logger(ctx).Info("stale callback", slog.String("data", cb.Data))
		r, err := b.requester(ctx, cb.From.ID, cb.Message.Chat.ID)
		if err != nil {
			return err
		}
		b.answer(ctx, cb, b.texts.Text(r.lang(), i18n.StaleCallback), true)
		return nil
	}
	b.answer(ctx, cb, "", false)

	r, err := b.requester(ctx, cb.From.ID, cb.Message.Chat.ID)
	if err != nil {
		return err
	}
	msgID := cb.Message.MessageID
	data := cb.Data
	b.logger(ctx).Debug("callback", slog.String("data", data), slog.String("state", r.conv.State.String()))

	switch {
	case strings.HasPrefix(data, cbLangPrefix):
		return b.languageSelected(ctx, r, msgID, model.ParseLanguage(strings.TrimPrefix(data, cbLangPrefix)))
	case strings.HasPrefix(data, cbWorkTimePrefix):
		return b.workTimeSelected(ctx, r, msgID, strings.TrimPrefix(data, cbWorkTimePrefix))
	case data == cbBackToLastName:
		return b.backToLastName(ctx, r, msgID)
	case data == cbConfirmYes:
		return b.confirmRegistration(ctx, r, msgID)
	case data == cbConfirmEdit:
		return b.restartRegistration(ctx, r, msgID)
	}

	if r.user == nil {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotRegistered))
	}

	switch {
	case data == cbReportHasTasks:
		return b.reportHasTasks(ctx, r, msgID)
	case data == cbReportNoTasks:
		return b.reportNoTasks(ctx, r, msgID)
	case data == cbCancelReport:
		return b.cancelReport(ctx, r, msgID)
	case data == cbShowExamples:
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.ExamplesHeader), keyboard(examplesKeyboard(b.texts, r.lang())))
	case strings.HasPrefix(data, cbExamplePrefix):
		return b.showExample(ctx, r, msgID, strings.TrimPrefix(data, cbExamplePrefix))
	case data == cbBackToReport:
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.EnterReportText), keyboard(reportTextKeyboard(b.texts, r.lang())))
	case data == cbEditFirstName, data == cbEditLastName, data == cbEditWorkTime, data == cbEditLanguage:
		return b.startEdit(ctx, r, msgID, data)
	case data == cbBackToProfile:
		return b.backToProfile(ctx, r, msgID)
	case data == cbBackToMenu:
		b.sessions.Clear(r.id)
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.HelpText), nil)
	}

	if !r.isAdmin {
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.NotAuthorized))
	}
	return b.handleAdminCallback(ctx, r, msgID, data)
}

// stale reports whether the message carrying the pressed button is too old.
func (b *Bot) stale(cb *tgbotapi.CallbackQuery) bool {
	if b.opts.CallbackMaxAge <= 0 || cb.Message.Date == 0 {
		return false
	}
	sent := time.Unix(int64(cb.Message.Date), 0)
	return b.clock.Now().Sub(sent) > b.opts.CallbackMaxAge
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) error {
	_, err := b.sender.Send(ctx, tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) replyMarkup(ctx context.Context, chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	_, err := b.sender.Send(ctx, msg)
	return err
}

// edit replaces the text (and inline keyboard, if given) of a bot message.
func (b *Bot) edit(ctx context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	var c tgbotapi.Chattable
	if markup != nil {
		c = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		c = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	_, err := b.sender.Send(ctx, c)
	if isNotModified(err) {
		return nil
	}
	return err
}

func (b *Bot) answer(ctx context.Context, cb *tgbotapi.CallbackQuery, text string, alert bool) {
	ack := tgbotapi.NewCallback(cb.ID, text)
	ack.ShowAlert = alert
	if err := b.sender.Request(ctx, ack); err != nil {
		b.logger(ctx).Warn("callback ack", sl.Err(err))
	}
}

func (b *Bot) replyError(ctx context.Context, chatID, userID int64) {
	lang := model.LanguageRU
	if user, err := b.users.Get(ctx, userID); err == nil {
		lang = user.Language
	}
	if err := b.reply(ctx, chatID, b.texts.Text(lang, i18n.Error)); err != nil {
		b.logger(ctx).Warn("send error reply", sl.Err(err))
	}
}

func keyboard(m tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &m
}
