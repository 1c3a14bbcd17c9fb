package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/repository"
)

var baku = time.FixedZone("+04", 4*3600)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, baku)
}

type sentMessage struct {
	ChatID   int64
	Text     string
	Prompt   bool
	Filename string
}

type recordingMessenger struct {
	mu     sync.Mutex
	sent   []sentMessage
	failOn map[int64]bool
}

func (m *recordingMessenger) record(msg sentMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[msg.ChatID] {
		return errors.New("forbidden: bot was blocked by the user")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMessenger) SendText(_ context.Context, chatID int64, text string) error {
	return m.record(sentMessage{ChatID: chatID, Text: text})
}

func (m *recordingMessenger) SendReportPrompt(_ context.Context, chatID int64, _ model.Language, text string) error {
	return m.record(sentMessage{ChatID: chatID, Text: text, Prompt: true})
}

func (m *recordingMessenger) SendDocument(_ context.Context, chatID int64, filename string, _ []byte) error {
	return m.record(sentMessage{ChatID: chatID, Filename: filename})
}

func (m *recordingMessenger) to(chatID int64) []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMessage
	for _, msg := range m.sent {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out
}

func (m *recordingMessenger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, entries []model.ReportEntry, lang model.Language) (string, error) {
	args := m.Called(ctx, entries, lang)
	return args.String(0), args.Error(1)
}

type stubRenderer struct{}

func (stubRenderer) DOCX(text, _, _ string) ([]byte, error) { return []byte("docx:" + text), nil }
func (stubRenderer) PDF(text, _, _ string) ([]byte, error)  { return []byte("pdf:" + text), nil }

type testEnv struct {
	clock      *clockwork.FakeClock
	users      *repository.UserRepository
	reports    *repository.DailyReportRepository
	weekly     *repository.WeeklyReportRepository
	auth       *AuthService
	texts      *i18n.Translator
	reminders  *MemoryReminderLog
	messenger  *recordingMessenger
	summarizer *mockSummarizer

	userSvc   *UserService
	reportSvc *ReportService
	adminSvc  *AdminService
	weeklySvc *WeeklyReportService
	notifier  *NotificationService
}

func newTestEnv(t *testing.T, now time.Time, adminIDs ...int64) *testEnv {
	t.Helper()

	db, err := repository.NewDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e := &testEnv{
		clock:      clockwork.NewFakeClockAt(now),
		users:      repository.NewUserRepository(db),
		reports:    repository.NewDailyReportRepository(db),
		weekly:     repository.NewWeeklyReportRepository(db),
		auth:       NewAuthService(adminIDs),
		texts:      i18n.New(),
		reminders:  NewMemoryReminderLog(),
		messenger:  &recordingMessenger{failOn: map[int64]bool{}},
		summarizer: &mockSummarizer{},
	}
	log := sl.Discard()
	e.userSvc = NewUserService(e.users, e.auth)
	e.reportSvc = NewReportService(e.reports, e.reminders, e.clock, baku, 10, log)
	e.adminSvc = NewAdminService(e.users, e.reports, e.auth, e.texts, e.clock, baku)
	e.weeklySvc = NewWeeklyReportService(e.reports, e.weekly, e.summarizer, stubRenderer{}, e.texts, e.clock, baku, log)
	e.notifier = NewNotificationService(e.users, e.reportSvc, e.adminSvc, e.weeklySvc, e.auth, e.reminders,
		e.messenger, e.texts, e.clock, baku, NotificationOptions{Cooldown: time.Hour, QuietHour: 23}, log)
	return e
}

func (e *testEnv) register(t *testing.T, id int64, first string, shift model.WorkTime) *model.User {
	t.Helper()
	user, err := e.userSvc.Register(context.Background(), RegistrationInput{
		TelegramID: id,
		FirstName:  first,
		LastName:   "Testov",
		WorkTime:   shift,
		Language:   model.LanguageRU,
	})
	require.NoError(t, err)
	return user
}
