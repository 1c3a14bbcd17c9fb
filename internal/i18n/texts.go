package i18n

import "daily-report-bot/internal/model"

// Message keys.
const (
	Welcome                 = "welcome"
	EnterFirstName          = "enter_first_name"
	EnterLastName           = "enter_last_name"
	SelectWorkTime          = "select_work_time"
	SelectLanguage          = "select_language"
	ConfirmRegistration     = "confirm_registration"
	RegistrationSuccess     = "registration_success"
	AlreadyRegistered       = "already_registered"
	ProfileInfo             = "profile_info"
	ProfileUpdated          = "profile_updated"
	ReportRequest           = "report_request"
	ReportTypeSelect        = "report_type_select"
	EnterReportText         = "enter_report_text"
	ReportSubmitted         = "report_submitted"
	ReportNoTasks           = "report_no_tasks"
	ReportAlreadySubmitted  = "report_already_submitted"
	ReportTooEarly          = "report_too_early"
	Reminder                = "reminder"
	AdminPanel              = "admin_panel"
	WeeklyReportHeader      = "weekly_report_header"
	WeeklyNoData            = "weekly_no_data"
	GeneratingReport        = "generating_report"
	GenerationInProgress    = "generation_in_progress"
	DailyReportSummary      = "daily_report_summary"
	DetailsHeader           = "details_header"
	DetailsWithTasks        = "details_with_tasks"
	DetailsNoTasks          = "details_no_tasks"
	DetailsNotSubmitted     = "details_not_submitted"
	UserList                = "user_list"
	Stats                   = "stats"
	CannotDeleteSelf        = "cannot_delete_self"
	CannotDeleteAdmin       = "cannot_delete_admin"
	UserNotFound            = "user_not_found"
	DeleteUserConfirm       = "delete_user_confirm"
	UserDeleted             = "user_deleted"
	DeleteCancelled         = "delete_cancelled"
	ExamplesHeader          = "examples_header"
	Error                   = "error"
	InvalidInput            = "invalid_input"
	InvalidName             = "invalid_name"
	InvalidLastName         = "invalid_last_name"
	ReportCancelled         = "report_cancelled"
	ReportTooShort          = "report_too_short"
	ReportEmpty             = "report_empty"
	NotAuthorized           = "not_authorized"
	FinishRegistrationFirst = "finish_registration_first"
	NotRegistered           = "not_registered"
	StaleCallback           = "stale_callback"
	Cancelled               = "cancelled"
	UnknownMessage          = "unknown_message"
	HelpText                = "help_text"
	NoTasksLabel            = "no_tasks_label"
	FallbackTitle           = "fallback_title"
	BotStarted              = "bot_started"
	BotStopped              = "bot_stopped"
	DebugDone               = "debug_done"
	DebugFailed             = "debug_failed"

	MenuProfile = "menu_profile"
	MenuReport  = "menu_report"
	MenuHelp    = "menu_help"
	MenuAdmin   = "menu_admin"

	BtnConfirm        = "btn_confirm"
	BtnEdit           = "btn_edit"
	BtnHasTasks       = "btn_has_tasks"
	BtnNoTasks        = "btn_no_tasks"
	BtnCancel         = "btn_cancel"
	BtnExamples       = "btn_examples"
	BtnBack           = "btn_back"
	BtnEditFirstName  = "btn_edit_first_name"
	BtnEditLastName   = "btn_edit_last_name"
	BtnEditWorkTime   = "btn_edit_work_time"
	BtnEditLanguage   = "btn_edit_language"
	BtnAdminStats     = "btn_admin_stats"
	BtnAdminUsers     = "btn_admin_users"
	BtnAdminDaily     = "btn_admin_daily"
	BtnAdminWeekly    = "btn_admin_weekly"
	BtnDeleteConfirm  = "btn_delete_confirm"
	BtnExampleUIUX    = "btn_example_uiux"
	BtnExampleGraphic = "btn_example_graphic"
	BtnExampleBackend = "btn_example_backend"
	BtnExampleFlutter = "btn_example_flutter"
	BtnExampleSEO     = "btn_example_seo"
)

// ExampleKinds lists report example specialities in keyboard order.
var ExampleKinds = []string{"uiux", "graphic", "backend", "flutter", "seo"}

// ExampleKey is the message key of a report example.
func ExampleKey(kind string) string { return "example_" + kind }

// ExampleButtonKey is the key of the button opening a report example.
func ExampleButtonKey(kind string) string { return "btn_example_" + kind }

var texts = map[model.Language]map[string]string{
	model.LanguageRU: {
		Welcome:        "👋 Добро пожаловать!\n\nВыберите язык:",
		EnterFirstName: "📝 Введите ваше имя:",
		EnterLastName:  "📝 Введите вашу фамилию:",
		SelectWorkTime: "⏰ Выберите ваше рабочее время:",
		SelectLanguage: "🌐 Выберите язык:",
		ConfirmRegistration: "📋 Подтвердите регистрацию:\n\n" +
			"Имя: %[1]s\n" +
			"Фамилия: %[2]s\n" +
			"Время работы: %[3]s\n" +
			"Язык: Русский",
		RegistrationSuccess: "✅ Регистрация успешно завершена!",
		AlreadyRegistered:   "👋 С возвращением, %[1]s!",
		ProfileInfo: "👤 Ваш профиль:\n\n" +
			"Имя: %[1]s\n" +
			"Фамилия: %[2]s\n" +
			"Время работы: %[3]s\n" +
			"Язык: Русский",
		ProfileUpdated: "✅ Профиль успешно обновлен!",
		ReportRequest: "⏰ Рабочий день закончен!\n\n" +
			"Пожалуйста, отправьте отчет о выполненных задачах за сегодня.\n" +
			"Если задач не было, нажмите соответствующую кнопку.",
		ReportTypeSelect:       "Выберите тип отчета:",
		EnterReportText:        "📝 Опишите задачи, которые вы выполнили сегодня:",
		ReportSubmitted:        "✅ Отчет успешно отправлен!",
		ReportNoTasks:          "✅ Отмечено, что задач не было",
		ReportAlreadySubmitted: "ℹ️ Вы уже отправили отчет за сегодня",
		ReportTooEarly: "⏰ Еще рано!\n\n" +
			"Отчет можно отправить после %[1]s\n" +
			"Рабочий день еще не закончился.",
		Reminder: "⏰ Напоминание!\n\n" +
			"Вы еще не отправили отчет за сегодня.\n" +
			"Пожалуйста, отправьте отчет о выполненных задачах.",
		AdminPanel:           "⚙️ Админ-панель\n\nВыберите действие:",
		WeeklyReportHeader:   "📊 Еженедельный отчет / Həftəlik Hesabat\n📅 %[1]s - %[2]s",
		WeeklyNoData:         "Нет отчетов за эту неделю / Bu həftə hesabat yoxdur",
		GeneratingReport:     "Генерирую отчет... / Hesabat hazırlanır...",
		GenerationInProgress: "⏳ Отчет уже формируется, подождите.",
		DailyReportSummary: "📊 Отчет за %[1]s\n\n" +
			"Всего пользователей: %[2]d\n" +
			"✅ Отправили отчет: %[3]d\n" +
			"❌ Не отправили: %[4]d\n" +
			"🚫 Без задач: %[5]d\n\n" +
			"%[6]s",
		DetailsHeader:       "👥 Подробности / Təfərrüatlar:\n\n",
		DetailsWithTasks:    "✅ С задачами / Tapşırıqlarla:\n",
		DetailsNoTasks:      "\n🚫 Без задач / Tapşırıqsız:\n",
		DetailsNotSubmitted: "\n❌ Не отправили / Göndərmədi:\n",
		UserList:            "👥 Список пользователей (%[1]d):\n\n%[2]s",
		Stats: "📊 Статистика:\n\n" +
			"Всего пользователей: %[1]d\n" +
			"Активных: %[2]d\n" +
			"Отчетов за сегодня: %[3]d\n" +
			"Отчетов за неделю: %[4]d",
		CannotDeleteSelf:  "❌ Вы не можете удалить самого себя",
		CannotDeleteAdmin: "❌ Нельзя удалить администратора",
		UserNotFound:      "❌ Пользователь не найден",
		DeleteUserConfirm: "⚠️ Вы уверены, что хотите удалить пользователя?\n\n" +
			"👤 %[1]s %[2]s\n\n" +
			"❗️ Будут удалены:\n" +
			"• Профиль пользователя\n" +
			"• Все его отчеты\n\n" +
			"Это действие необратимо!",
		UserDeleted: "✅ Пользователь удален\n\n" +
			"👤 %[1]s %[2]s\n\n" +
			"Все данные пользователя удалены из системы.",
		DeleteCancelled: "Удаление отменено",
		ExamplesHeader:  "📝 Примеры отчетов\n\nВыберите вашу специальность:",
		"example_uiux": "🎨 UI/UX Дизайнер:\n\n" +
			"✅ Создал прототип главной страницы\n" +
			"✅ Доработал дизайн-систему (цвета, шрифты)\n" +
			"✅ Провел A/B тестирование кнопок CTA\n" +
			"✅ Согласовал макеты с заказчиком",
		"example_graphic": "🖼 Графический дизайнер:\n\n" +
			"✅ Разработал 5 баннеров для соцсетей\n" +
			"✅ Создал логотип для нового проекта\n" +
			"✅ Подготовил презентацию (20 слайдов)\n" +
			"✅ Отредактировал фото для сайта",
		"example_backend": "⚙️ PHP Backend разработчик:\n\n" +
			"✅ Исправил баг в модуле авторизации\n" +
			"✅ Оптимизировал SQL запросы (ускорение на 40%%)\n" +
			"✅ Добавил API endpoint для отчетов\n" +
			"✅ Провел code review для коллеги",
		"example_flutter": "📱 Flutter разработчик:\n\n" +
			"✅ Реализовал экран профиля пользователя\n" +
			"✅ Интегрировал Firebase Authentication\n" +
			"✅ Исправил краши на Android 12\n" +
			"✅ Добавил push-уведомления",
		"example_seo": "🔍 SEO специалист:\n\n" +
			"✅ Провел аудит сайта (выявлено 15 проблем)\n" +
			"✅ Оптимизировал 10 страниц под ключевые слова\n" +
			"✅ Настроил Google Search Console\n" +
			"✅ Проанализировал конкурентов (топ-5)",
		Error:        "❌ Произошла ошибка. Попробуйте еще раз.",
		InvalidInput: "❌ Некорректный ввод. Попробуйте еще раз.",
		InvalidName: "❌ Некорректное имя.\n\n" +
			"Допускаются только буквы, пробелы, дефисы, апострофы (2-50 символов).\n" +
			"Пример: Иван, Мария-Анна, O'Connor",
		InvalidLastName: "❌ Некорректная фамилия.\n\n" +
			"Допускаются только буквы, пробелы, дефисы, апострофы (2-50 символов).\n" +
			"Пример: Иванов, Салтыков-Щедрин, O'Brien",
		ReportCancelled:         "❌ Отправка отчета отменена",
		ReportTooShort:          "❌ Отчет слишком короткий. Минимум %[1]d символов.",
		ReportEmpty:             "❌ Отчет не может быть пустым или состоять только из пробелов.",
		NotAuthorized:           "❌ У вас нет доступа к этой функции",
		FinishRegistrationFirst: "ℹ️ Сначала завершите регистрацию, пожалуйста.",
		NotRegistered:           "ℹ️ Вы еще не зарегистрированы. Нажмите /start",
		StaleCallback:           "⌛ Кнопка устарела. Попробуйте еще раз.",
		Cancelled:               "⏪ Действие отменено.",
		UnknownMessage:          "Я не понял сообщение. Загляни в /help.",
		HelpText: "❓ Помощь\n\n" +
			"Этот бот помогает отслеживать ежедневные задачи сотрудников.\n\n" +
			"Основные команды:\n" +
			"/profile - Просмотр профиля\n" +
			"/report - Отправить отчет\n" +
			"/cancel - Отменить текущий ввод\n" +
			"/help - Показать это сообщение",
		NoTasksLabel:  "Задач не было",
		FallbackTitle: "📊 ЕЖЕНЕДЕЛЬНЫЙ ОТЧЕТ\n\nПериод: неделя с %[1]s по %[2]s\n\n",
		BotStarted:    "🤖 Бот запущен и готов к работе!\nBot started and ready to work!",
		BotStopped:    "🤖 Бот остановлен\nBot stopped",
		DebugDone:     "✅ %[1]s: отправлено",
		DebugFailed:   "❌ %[1]s ошибка: %[2]s",

		MenuProfile: "👤 Мой профиль",
		MenuReport:  "📊 Отправить отчет",
		MenuHelp:    "❓ Помощь",
		MenuAdmin:   "⚙️ Админ-панель",

		BtnConfirm:        "✅ Подтвердить",
		BtnEdit:           "✏️ Изменить",
		BtnHasTasks:       "📝 Есть задачи для отчета",
		BtnNoTasks:        "🚫 Задач не было",
		BtnCancel:         "❌ Отменить",
		BtnExamples:       "📝 Примеры",
		BtnBack:           "◀️ Назад",
		BtnEditFirstName:  "✏️ Изменить имя",
		BtnEditLastName:   "✏️ Изменить фамилию",
		BtnEditWorkTime:   "⏰ Изменить время работы",
		BtnEditLanguage:   "🌐 Изменить язык",
		BtnAdminStats:     "📊 Статистика",
		BtnAdminUsers:     "👥 Пользователи",
		BtnAdminDaily:     "📋 Отчеты за сегодня",
		BtnAdminWeekly:    "📅 Недельный отчет",
		BtnDeleteConfirm:  "✅ Да, удалить",
		BtnExampleUIUX:    "🎨 UI/UX Дизайнер",
		BtnExampleGraphic: "🖼 Графический дизайнер",
		BtnExampleBackend: "⚙️ PHP Backend",
		BtnExampleFlutter: "📱 Flutter Dev",
		BtnExampleSEO:     "🔍 SEO",
	},
	model.LanguageAZ: {
		Welcome:        "👋 Xoş gəlmisiniz!\n\nDili seçin:",
		EnterFirstName: "📝 Adınızı daxil edin:",
		EnterLastName:  "📝 Soyadınızı daxil edin:",
		SelectWorkTime: "⏰ İş vaxtınızı seçin:",
		SelectLanguage: "🌐 Dili seçin:",
		ConfirmRegistration: "📋 Qeydiyyatı təsdiq edin:\n\n" +
			"Ad: %[1]s\n" +
			"Soyad: %[2]s\n" +
			"İş vaxtı: %[3]s\n" +
			"Dil: Azərbaycan",
		RegistrationSuccess: "✅ Qeydiyyat uğurla tamamlandı!",
		AlreadyRegistered:   "👋 Yenidən xoş gəlmisiniz, %[1]s!",
		ProfileInfo: "👤 Sizin profiliniz:\n\n" +
			"Ad: %[1]s\n" +
			"Soyad: %[2]s\n" +
			"İş vaxtı: %[3]s\n" +
			"Dil: Azərbaycan",
		ProfileUpdated: "✅ Profil uğurla yeniləndi!",
		ReportRequest: "⏰ İş günü bitdi!\n\n" +
			"Zəhmət olmasa, bu gün görülən işlər haqqında hesabat göndərin.\n" +
			"Əgər tapşırıq olmayıbsa, müvafiq düyməni basın.",
		ReportTypeSelect:       "Hesabat növünü seçin:",
		EnterReportText:        "📝 Bu gün yerinə yetirdiyiniz tapşırıqları təsvir edin:",
		ReportSubmitted:        "✅ Hesabat uğurla göndərildi!",
		ReportNoTasks:          "✅ Tapşırıq olmadığı qeyd edildi",
		ReportAlreadySubmitted: "ℹ️ Siz bu gün artıq hesabat göndərmisiniz",
		ReportTooEarly: "⏰ Hələ tezdir!\n\n" +
			"Hesabatı %[1]s-dən sonra göndərə bilərsiniz\n" +
			"İş günü hələ bitməyib.",
		Reminder: "⏰ Xatırlatma!\n\n" +
			"Siz hələ bu gün üçün hesabat göndərməmisiniz.\n" +
			"Zəhmət olmasa, görülən işlər haqqında hesabat göndərin.",
		AdminPanel:           "⚙️ Admin panel\n\nƏməliyyatı seçin:",
		GenerationInProgress: "⏳ Hesabat artıq hazırlanır, gözləyin.",
		DailyReportSummary: "📊 %[1]s tarixli hesabat\n\n" +
			"Cəmi istifadəçi: %[2]d\n" +
			"✅ Hesabat göndərdi: %[3]d\n" +
			"❌ Göndərmədi: %[4]d\n" +
			"🚫 Tapşırıqsız: %[5]d\n\n" +
			"%[6]s",
		UserList: "👥 İstifadəçilər siyahısı (%[1]d):\n\n%[2]s",
		Stats: "📊 Statistika:\n\n" +
			"Cəmi istifadəçi: %[1]d\n" +
			"Aktiv: %[2]d\n" +
			"Bu günkü hesabatlar: %[3]d\n" +
			"Həftəlik hesabatlar: %[4]d",
		CannotDeleteSelf:  "❌ Siz özünüzü silə bilməzsiniz",
		CannotDeleteAdmin: "❌ Administratoru silmək olmaz",
		UserNotFound:      "❌ İstifadəçi tapılmadı",
		DeleteUserConfirm: "⚠️ İstifadəçini silmək istədiyinizə əminsiniz?\n\n" +
			"👤 %[1]s %[2]s\n\n" +
			"❗️ Silinəcək:\n" +
			"• İstifadəçi profili\n" +
			"• Bütün hesabatları\n\n" +
			"Bu əməliyyatı geri qaytarmaq mümkün deyil!",
		UserDeleted: "✅ İstifadəçi silindi\n\n" +
			"👤 %[1]s %[2]s\n\n" +
			"İstifadəçinin bütün məlumatları sistemdən silindi.",
		DeleteCancelled: "Silinmə ləğv edildi",
		ExamplesHeader:  "📝 Hesabat nümunələri\n\nİxtisasınızı seçin:",
		"example_uiux": "🎨 UI/UX Dizayner:\n\n" +
			"✅ Ana səhifənin prototipini yaratdım\n" +
			"✅ Dizayn sistemini təkmilləşdirdim (rənglər, şriftlər)\n" +
			"✅ CTA düymələri üçün A/B test apardım\n" +
			"✅ Maketi müştəri ilə razılaşdırdım",
		"example_graphic": "🖼 Qrafik dizayner:\n\n" +
			"✅ Sosial şəbəkələr üçün 5 banner hazırladım\n" +
			"✅ Yeni layihə üçün loqotip yaratdım\n" +
			"✅ Təqdimat hazırladım (20 slayd)\n" +
			"✅ Sayt üçün fotoları redaktə etdim",
		"example_backend": "⚙️ PHP Backend developer:\n\n" +
			"✅ Avtorizasiya modulunda bağı düzəltdim\n" +
			"✅ SQL sorğularını optimallaşdırdım (40%% sürətlənmə)\n" +
			"✅ Hesabatlar üçün API endpoint əlavə etdim\n" +
			"✅ Həmkarım üçün code review apardım",
		"example_flutter": "📱 Flutter developer:\n\n" +
			"✅ İstifadəçi profili ekranını reallaşdırdım\n" +
			"✅ Firebase Authentication inteqrasiya etdim\n" +
			"✅ Android 12-də crashları düzəltdim\n" +
			"✅ Push bildirişlər əlavə etdim",
		"example_seo": "🔍 SEO mütəxəssis:\n\n" +
			"✅ Sayt auditini apardım (15 problem aşkarlandı)\n" +
			"✅ 10 səhifəni açar sözlərə görə optimallaşdırdım\n" +
			"✅ Google Search Console quraşdırdım\n" +
			"✅ Rəqibləri təhlil etdim (top-5)",
		Error:        "❌ Xəta baş verdi. Yenidən cəhd edin.",
		InvalidInput: "❌ Yanlış məlumat. Yenidən cəhd edin.",
		InvalidName: "❌ Yanlış ad.\n\n" +
			"Yalnız hərflər, boşluq, tire, apostrof (2-50 simvol).\n" +
			"Nümunə: Orxan, Məryəm-Anna",
		InvalidLastName: "❌ Yanlış soyad.\n\n" +
			"Yalnız hərflər, boşluq, tire, apostrof (2-50 simvol).\n" +
			"Nümunə: Əliyev, Hacı-Məmmədov",
		ReportCancelled:         "❌ Hesabat göndərilməsi ləğv edildi",
		ReportTooShort:          "❌ Hesabat çox qısadır. Minimum %[1]d simvol.",
		ReportEmpty:             "❌ Hesabat boş ola bilməz və ya yalnız boşluqlardan ibarət ola bilməz.",
		NotAuthorized:           "❌ Bu funksiyaya girişiniz yoxdur",
		FinishRegistrationFirst: "ℹ️ Zəhmət olmasa, əvvəlcə qeydiyyatı tamamlayın.",
		NotRegistered:           "ℹ️ Siz hələ qeydiyyatdan keçməmisiniz. /start basın",
		StaleCallback:           "⌛ Düymə köhnəlib. Yenidən cəhd edin.",
		Cancelled:               "⏪ Əməliyyat ləğv edildi.",
		UnknownMessage:          "Mesajı başa düşmədim. /help baxın.",
		HelpText: "❓ Kömək\n\n" +
			"Bu bot işçilərin gündəlik tapşırıqlarını izləməyə kömək edir.\n\n" +
			"Əsas əmrlər:\n" +
			"/start - Botla işə başla\n" +
			"/profile - Profilə bax\n" +
			"/report - Hesabat göndər\n" +
			"/cancel - Cari əməliyyatı ləğv et\n" +
			"/help - Bu mesajı göstər",
		NoTasksLabel:  "Tapşırıq olmayıb",
		FallbackTitle: "📊 HƏFTƏLİK HESABAT\n\nDövr: %[1]s - %[2]s həftəsi\n\n",

		MenuProfile: "👤 Mənim profilim",
		MenuReport:  "📊 Hesabat göndər",
		MenuHelp:    "❓ Kömək",
		MenuAdmin:   "⚙️ Admin panel",

		BtnConfirm:        "✅ Təsdiq et",
		BtnEdit:           "✏️ Dəyişdir",
		BtnHasTasks:       "📝 Hesabat üçün tapşırıqlar var",
		BtnNoTasks:        "🚫 Tapşırıq olmayıb",
		BtnCancel:         "❌ Ləğv et",
		BtnExamples:       "📝 Nümunələr",
		BtnBack:           "◀️ Geri",
		BtnEditFirstName:  "✏️ Adı dəyişdir",
		BtnEditLastName:   "✏️ Soyadı dəyişdir",
		BtnEditWorkTime:   "⏰ İş vaxtını dəyişdir",
		BtnEditLanguage:   "🌐 Dili dəyişdir",
		BtnAdminStats:     "📊 Statistika",
		BtnAdminUsers:     "👥 İstifadəçilər",
		BtnAdminDaily:     "📋 Bugünkü hesabatlar",
		BtnAdminWeekly:    "📅 Həftəlik hesabat",
		BtnDeleteConfirm:  "✅ Bəli, sil",
		BtnExampleUIUX:    "🎨 UI/UX Dizayner",
		BtnExampleGraphic: "🖼 Qrafik dizayner",
		BtnExampleBackend: "⚙️ PHP Backend",
		BtnExampleFlutter: "📱 Flutter Dev",
		BtnExampleSEO:     "🔍 SEO",
	},
}
