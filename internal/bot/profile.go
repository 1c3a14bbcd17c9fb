package bot

import (
	"context"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/service"
	"daily-report-bot/internal/session"
)

func (b *Bot) profileText(user *model.User) string {
	return b.texts.Text(user.Language, i18n.ProfileInfo, user.FirstName, user.LastName, string(user.WorkTime))
}

func (b *Bot) handleProfile(ctx context.Context, r requester) error {
	b.sessions.Clear(r.id)
	return b.replyMarkup(ctx, r.chatID, b.profileText(r.user), profileKeyboard(b.texts, r.lang()))
}

func (b *Bot) startEdit(ctx context.Context, r requester, msgID int, data string) error {
	lang := r.lang()
	switch data {
	case cbEditFirstName:
		b.sessions.Set(r.id, session.Conversation{State: session.StateEditFirstName})
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.EnterFirstName), nil)
	case cbEditLastName:
		b.sessions.Set(r.id, session.Conversation{State: session.StateEditLastName})
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.EnterLastName), nil)
	case cbEditWorkTime:
		b.sessions.Set(r.id, session.Conversation{State: session.StateEditWorkTime})
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.SelectWorkTime), keyboard(workTimeKeyboard(b.texts, lang, cbBackToProfile)))
	default:
		b.sessions.Set(r.id, session.Conversation{State: session.StateEditLanguage})
		return b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.SelectLanguage), keyboard(languageKeyboard()))
	}
}

func (b *Bot) backToProfile(ctx context.Context, r requester, msgID int) error {
	b.sessions.Clear(r.id)
	return b.edit(ctx, r.chatID, msgID, b.profileText(r.user), keyboard(profileKeyboard(b.texts, r.lang())))
}

// profileName stores an edited first or last name. Invalid input re-prompts.
func (b *Bot) profileName(ctx context.Context, r requester, text string) error {
	lang := r.lang()
	name, err := service.ValidateName(text, b.texts.MenuLabels())
	if err != nil {
		key := i18n.InvalidName
		if r.conv.State == session.StateEditLastName {
			key = i18n.InvalidLastName
		}
		return b.reply(ctx, r.chatID, b.texts.Text(lang, key))
	}

	if r.conv.State == session.StateEditFirstName {
		err = b.users.UpdateFirstName(ctx, r.id, name)
	} else {
		err = b.users.UpdateLastName(ctx, r.id, name)
	}
	if err != nil {
		return err
	}
	b.sessions.Clear(r.id)
	if err := b.reply(ctx, r.chatID, b.texts.Text(lang, i18n.ProfileUpdated)); err != nil {
		return err
	}
	return b.sendProfile(ctx, r)
}

func (b *Bot) updateWorkTime(ctx context.Context, r requester, msgID int, workTime model.WorkTime) error {
	if err := b.users.UpdateWorkTime(ctx, r.id, workTime); err != nil {
		return err
	}
	b.sessions.Clear(r.id)
	if err := b.edit(ctx, r.chatID, msgID, b.texts.Text(r.lang(), i18n.ProfileUpdated), nil); err != nil {
		return err
	}
	return b.sendProfile(ctx, r)
}

// updateLanguage switches the language. The profile is resent with the reply
// menu, whose labels change with the language.
func (b *Bot) updateLanguage(ctx context.Context, r requester, msgID int, lang model.Language) error {
	if r.user == nil {
		return nil
	}
	if err := b.users.UpdateLanguage(ctx, r.id, lang); err != nil {
		return err
	}
	b.sessions.Clear(r.id)
	if err := b.edit(ctx, r.chatID, msgID, b.texts.Text(lang, i18n.ProfileUpdated), nil); err != nil {
		return err
	}
	user, err := b.users.Get(ctx, r.id)
	if err != nil {
		return err
	}
	return b.replyMarkup(ctx, r.chatID, b.profileText(user), mainMenuKeyboard(b.texts, lang, r.isAdmin))
}

func (b *Bot) sendProfile(ctx context.Context, r requester) error {
	user, err := b.users.Get(ctx, r.id)
	if err != nil {
		return err
	}
	return b.replyMarkup(ctx, r.chatID, b.profileText(user), profileKeyboard(b.texts, user.Language))
}
