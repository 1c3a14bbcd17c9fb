package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/model"
)

// Callback payloads.
const (
	cbLangPrefix          = "lang_"
	cbWorkTimePrefix      = "work_time_"
	cbBackToLastName      = "back_to_last_name"
	cbBackToProfile       = "back_to_profile"
	cbConfirmYes          = "confirm_yes"
	cbConfirmEdit         = "confirm_edit"
	cbReportHasTasks      = "report_has_tasks"
	cbReportNoTasks       = "report_no_tasks"
	cbCancelReport        = "cancel_report"
	cbShowExamples        = "show_examples"
	cbExamplePrefix       = "example_"
	cbBackToReport        = "back_to_report"
	cbEditFirstName       = "edit_first_name"
	cbEditLastName        = "edit_last_name"
	cbEditWorkTime        = "edit_work_time"
	cbEditLanguage        = "edit_language"
	cbBackToMenu          = "back_to_menu"
	cbAdminStats          = "admin_stats"
	cbAdminUsers          = "admin_users"
	cbAdminDaily          = "admin_daily_reports"
	cbAdminWeekly         = "admin_weekly_report"
	cbAdminBack           = "admin_panel_back"
	cbDeleteUserPrefix    = "delete_user_"
	cbConfirmDeletePrefix = "confirm_delete_"
	cbCancelDeletePrefix  = "cancel_delete_"
)

const (
	btnLanguageAZ = "🇦🇿 Azərbaycanca"
	btnLanguageRU = "🇷🇺 Русский"
)

var workTimeButtons = map[model.WorkTime]string{
	model.ShiftA: "🌅 9:00 - 18:00",
	model.ShiftB: "🌆 10:00 - 19:00",
}

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func column(buttons ...tgbotapi.InlineKeyboardButton) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(b))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return column(
		button(btnLanguageAZ, cbLangPrefix+string(model.LanguageAZ)),
		button(btnLanguageRU, cbLangPrefix+string(model.LanguageRU)),
	)
}

// workTimeKeyboard offers both shifts; back is the payload of the back button.
func workTimeKeyboard(tr *i18n.Translator, lang model.Language, back string) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(model.WorkTimes)+1)
	for _, wt := range model.WorkTimes {
		buttons = append(buttons, button(workTimeButtons[wt], cbWorkTimePrefix+wt.Code()))
	}
	buttons = append(buttons, button(tr.Text(lang, i18n.BtnBack), back))
	return column(buttons...)
}

func confirmKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return column(
		button(tr.Text(lang, i18n.BtnConfirm), cbConfirmYes),
		button(tr.Text(lang, i18n.BtnEdit), cbConfirmEdit),
	)
}

func reportTypeKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return column(
		button(tr.Text(lang, i18n.BtnHasTasks), cbReportHasTasks),
		button(tr.Text(lang, i18n.BtnNoTasks), cbReportNoTasks),
	)
}

func reportTextKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		button(tr.Text(lang, i18n.BtnExamples), cbShowExamples),
		button(tr.Text(lang, i18n.BtnCancel), cbCancelReport),
	))
}

// examplesKeyboard lays the specialities out two per row, then the back button.
func examplesKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, kind := range i18n.ExampleKinds {
		row = append(row, button(tr.Text(lang, i18n.ExampleButtonKey(kind)), cbExamplePrefix+kind))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button(tr.Text(lang, i18n.BtnBack), cbBackToReport)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func profileKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return column(
		button(tr.Text(lang, i18n.BtnEditFirstName), cbEditFirstName),
		button(tr.Text(lang, i18n.BtnEditLastName), cbEditLastName),
		button(tr.Text(lang, i18n.BtnEditWorkTime), cbEditWorkTime),
		button(tr.Text(lang, i18n.BtnEditLanguage), cbEditLanguage),
		button(tr.Text(lang, i18n.BtnBack), cbBackToMenu),
	)
}

func adminKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button(tr.Text(lang, i18n.BtnAdminStats), cbAdminStats),
			button(tr.Text(lang, i18n.BtnAdminUsers), cbAdminUsers),
		),
		tgbotapi.NewInlineKeyboardRow(
			button(tr.Text(lang, i18n.BtnAdminDaily), cbAdminDaily),
			button(tr.Text(lang, i18n.BtnAdminWeekly), cbAdminWeekly),
		),
	)
}

func adminBackKeyboard(tr *i18n.Translator, lang model.Language) tgbotapi.InlineKeyboardMarkup {
	return column(button(tr.Text(lang, i18n.BtnBack), cbAdminBack))
}

// userListKeyboard has one delete button per user, then back.
func userListKeyboard(tr *i18n.Translator, lang model.Language, users []model.User) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(users)+1)
	for _, u := range users {
		buttons = append(buttons, button(
			fmt.Sprintf("🗑 %s %s", u.FirstName, u.LastName),
			cbDeleteUserPrefix+strconv.FormatInt(u.TelegramID, 10),
		))
	}
	buttons = append(buttons, button(tr.Text(lang, i18n.BtnBack), cbAdminBack))
	return column(buttons...)
}

func deleteConfirmKeyboard(tr *i18n.Translator, lang model.Language, telegramID int64) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(telegramID, 10)
	return column(
		button(tr.Text(lang, i18n.BtnDeleteConfirm), cbConfirmDeletePrefix+id),
		button(tr.Text(lang, i18n.BtnCancel), cbCancelDeletePrefix+id),
	)
}

func mainMenuKeyboard(tr *i18n.Translator, lang model.Language, isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(tr.Text(lang, i18n.MenuProfile)),
			tgbotapi.NewKeyboardButton(tr.Text(lang, i18n.MenuReport)),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(tr.Text(lang, i18n.MenuHelp))),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(tr.Text(lang, i18n.MenuAdmin))))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func parseID(data, prefix string) (int64, error) {
	return strconv.ParseInt(data[len(prefix):], 10, 64)
}
