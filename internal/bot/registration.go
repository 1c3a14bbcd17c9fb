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

func (b *Bot) handleStart(ctx context.Context, r requester) error {
	b.sessions.Clear(r.id)
	if r.user != nil {
		text := b.texts.Text(r.lang(), i18n.AlreadyRegistered, r.user.FirstName) + "\n\n" + b.texts.Text(r.lang(), i18n.HelpText)
		return b.replyMarkup(ctx, r.chatID, text, mainMenuKeyboard(b.texts, r.lang(), r.isAdmin))
	}

	b.sessions.Set(r.id, session.Conversation{State: session.StateLanguageSelect})
	b.logger(ctx).Info("registration started")
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(model.LanguageRU, i18n.Welcome), languageKeyboard())
}

// languageSelected handles lang_<code> both during registration and when the
// language is edited from the profile.
func (b *Bot) languageSelected(ctx context.Context, r requester, msgID int, lang model.Language) error {
	switch r.conv.State {
	case session.StateLanguageSelect:
		conv := r.conv
		conv.Registration.Language = lang
		conv.State = session.StateFirstName
		b.sessions.Set(r.id, conv)
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.EnterFirstName), nil)
	case session.StateEditLanguage:
		return b.updateLanguage(ctx, r, msgID, lang)
	default:
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.InvalidInput))
	}
}

// registrationName takes the first or last name typed during registration.
// Invalid input re-prompts without changing state.
func (b *Bot) registrationName(ctx context.Context, r requester, text string) error {
	lang := r.lang()
	name, err := service.ValidateName(text, b.texts.MenuLabels())
	if err != nil {
		key := i18n.InvalidName
		if r.conv.State == session.StateLastName {
			key = i18n.InvalidLastName
		}
		return b.reply(ctx, r.chatID, b.texts.Text(lang, key))
	}

	conv := r.conv
	if conv.State == session.StateFirstName {
		conv.Registration.FirstName = name
		conv.State = session.StateLastName
		b.sessions.Set(r.id, conv)
		return b.reply(ctx, r.chatID, b.texts.Text(lang, i18n.EnterLastName))
	}

	conv.Registration.LastName = name
	conv.State = session.StateWorkTimeSelect
	b.sessions.Set(r.id, conv)
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(lang, i18n.SelectWorkTime), workTimeKeyboard(b.texts, lang, cbBackToLastName))
}

func (b *Bot) backToLastName(ctx context.Context, r requester, msgID int) error {
	if r.conv.State != session.StateWorkTimeSelect {
		return nil
	}
	b.sessions.Transition(r.id, session.StateLastName)
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.EnterLastName), nil)
}

func (b *Bot) workTimeSelected(ctx context.Context, r requester, msgID int, code string) error {
	workTime, ok := model.ParseWorkTimeCode(code)
	if !ok {
		b.logger(ctx).Warn("unknown work time code, using default", slog.String("code", code), slog.String("work_time", string(workTime)))
	}

	switch r.conv.State {
	case session.StateWorkTimeSelect:
		conv := r.conv
		conv.Registration.WorkTime = workTime
		conv.State = session.StateConfirm
		b.sessions.Set(r.id, conv)
		reg := conv.Registration
		text := b.texts.Text(r.lang(), i18n.ConfirmRegistration, reg.FirstName, reg.LastName, string(reg.WorkTime))
		return b.edit(ctx, r.chatID, msgID, text, keyboard(confirmKeyboard(b.texts, r.lang())))
	case session.StateEditWorkTime:
		return b.updateWorkTime(ctx, r, msgID, workTime)
	default:
		return b.reply(ctx, r.chatID, b.texts.Text(r.lang(), i18n.InvalidInput))
	}
}

// confirmRegistration creates the user from the collected fields.
func (b *Bot) confirmRegistration(ctx context.Context, r requester, msgID int) error {
	if r.conv.State != session.StateConfirm {
		return nil
	}
	reg := r.conv.Registration
	lang := r.lang()

	user, err := b.users.Register(ctx, service.RegistrationInput{
		TelegramID: r.id,
		FirstName:  reg.FirstName,
		LastName:   reg.LastName,
		WorkTime:   reg.WorkTime,
		Language:   lang,
	})
	b.sessions.Clear(r.id)
	if errors.Is(err, service.ErrAlreadyRegistered) {
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.AlreadyRegistered, reg.FirstName), nil)
	}
	if err != nil {
		return err
	}

	b.logger(ctx).Info("user registered", slog.Bool("is_admin", user.IsAdmin), slog.String("work_time", string(user.WorkTime)))
	if err := b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.RegistrationSuccess), nil); err != nil {
		return err
	}
	return b.replyMarkup(ctx, r.chatID, b.texts.Text(lang, i18n.HelpText), mainMenuKeyboard(b.texts, lang, b.auth.IsAdmin(r.id, user)))
}

// restartRegistration rewinds to the first name; earlier answers are dropped.
func (b *Bot) restartRegistration(ctx context.Context, r requester, msgID int) error {
	if r.conv.State != session.StateConfirm {
		return nil
	}
	b.sessions.Set(r.id, session.Conversation{
		State:        session.StateFirstName,
		Registration: session.Registration{Language: r.lang()},
	})
	return b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.EnterFirstName), nil)
}
