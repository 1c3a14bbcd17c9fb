package service

import (
	"context"

	"daily-report-bot/internal/model"
)

// UserStore is the persistence the services need for users.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	ListActive(ctx context.Context) ([]model.User, error)
	ListActiveByWorkTime(ctx context.Context, workTime model.WorkTime) ([]model.User, error)
	CountActive(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, telegramID int64, fields map[string]interface{}) error
	DeleteWithReports(ctx context.Context, telegramID int64) error
}

// ReportStore is the persistence the services need for daily reports.
type ReportStore interface {
	Create(ctx context.Context, report *model.DailyReport) error
	Exists(ctx context.Context, telegramID int64, day string) (bool, error)
	ListByDay(ctx context.Context, day string) ([]model.DailyReport, error)
	CountBetween(ctx context.Context, from, to string) (int64, error)
	EntriesBetween(ctx context.Context, from, to string) ([]model.ReportEntry, error)
}

// WeeklyStore keeps generated weekly summaries.
type WeeklyStore interface {
	Create(ctx context.Context, report *model.WeeklyReport) error
}
