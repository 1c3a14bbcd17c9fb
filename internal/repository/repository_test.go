package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"daily-report-bot/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, repo *UserRepository, telegramID int64, first string, shift model.WorkTime) *model.User {
	t.Helper()
	user := &model.User{
		TelegramID: telegramID,
		FirstName:  first,
		LastName:   "Testov",
		Language:   model.LanguageRU,
		WorkTime:   shift,
		IsActive:   true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	seedUser(t, repo, 1, "Ivan", model.ShiftA)
	seedUser(t, repo, 2, "Anar", model.ShiftB)

	t.Run("duplicate telegram id", func(t *testing.T) {
		err := repo.Create(ctx, &model.User{TelegramID: 1, FirstName: "X", LastName: "Y", WorkTime: model.ShiftA})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("find", func(t *testing.T) {
		user, err := repo.FindByTelegramID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, model.ShiftB, user.WorkTime)

		_, err = repo.FindByTelegramID(ctx, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("by work time", func(t *testing.T) {
		users, err := repo.ListActiveByWorkTime(ctx, model.ShiftA)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, int64(1), users[0].TelegramID)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, repo.UpdateFields(ctx, 1, map[string]interface{}{"first_name": "Pyotr"}))
		user, err := repo.FindByTelegramID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Pyotr", user.FirstName)

		err = repo.UpdateFields(ctx, 99, map[string]interface{}{"first_name": "Nobody"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDailyReportRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	reports := NewDailyReportRepository(db)

	ivan := seedUser(t, users, 1, "Ivan", model.ShiftA)
	anar := seedUser(t, users, 2, "Anar", model.ShiftB)

	text := "Сделал вёрстку главной страницы"
	now := time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)
	require.NoError(t, reports.Create(ctx, &model.DailyReport{
		UserID: ivan.ID, TelegramID: 1, ReportDay: "2026-10-14", ReportDate: now, ReportText: &text, HasTasks: true, SubmittedAt: now,
	}))
	require.NoError(t, reports.Create(ctx, &model.DailyReport{
		UserID: anar.ID, TelegramID: 2, ReportDay: "2026-10-13", ReportDate: now, HasTasks: false, SubmittedAt: now,
	}))

	t.Run("one per user and day", func(t *testing.T) {
		err := reports.Create(ctx, &model.DailyReport{
			UserID: ivan.ID, TelegramID: 1, ReportDay: "2026-10-14", ReportDate: now, HasTasks: false, SubmittedAt: now,
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := reports.Exists(ctx, 1, "2026-10-14")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = reports.Exists(ctx, 1, "2026-10-13")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no tasks keeps null text", func(t *testing.T) {
		report, err := reports.Find(ctx, 2, "2026-10-13")
		require.NoError(t, err)
		assert.False(t, report.HasTasks)
		assert.Nil(t, report.ReportText)
	})

	t.Run("entries ordered by day", func(t *testing.T) {
		entries, err := reports.EntriesBetween(ctx, "2026-10-12", "2026-10-18")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Anar", entries[0].FirstName)
		assert.False(t, entries[0].HasTasks)
		assert.Equal(t, text, entries[1].Text)
	})

	t.Run("count", func(t *testing.T) {
		count, err := reports.CountBetween(ctx, "2026-10-14", "2026-10-14")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, users.DeleteWithReports(ctx, 1))
		ok, err := reports.Exists(ctx, 1, "2026-10-14")
		require.NoError(t, err)
		assert.False(t, ok)

		err = users.DeleteWithReports(ctx, 1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestWeeklyReportRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWeeklyReportRepository(newTestDB(t))

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &model.WeeklyReport{WeekStart: start, WeekEnd: start.AddDate(0, 0, 4), ReportText: "first"}))
	require.NoError(t, repo.Create(ctx, &model.WeeklyReport{WeekStart: start, WeekEnd: start.AddDate(0, 0, 4), ReportText: "second"}))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", latest.ReportText)
}

func TestMySQLDSN(t *testing.T) {
	assert.Equal(t,
		"u:p@tcp(db:3306)/reports?charset=utf8mb4&parseTime=True&loc=UTC",
		mysqlDSN("u:p@tcp(db:3306)/reports"))
	assert.Equal(t,
		"u:p@tcp(db:3306)/reports?parseTime=true&charset=utf8mb4&loc=UTC",
		mysqlDSN("u:p@tcp(db:3306)/reports?parseTime=true"))
}
