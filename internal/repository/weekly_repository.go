package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"daily-report-bot/internal/model"
)

// WeeklyReportRepository stores generated weekly summaries. Rows are never updated.
type WeeklyReportRepository struct {
	db *gorm.DB
}

func NewWeeklyReportRepository(db *gorm.DB) *WeeklyReportRepository {
	return &WeeklyReportRepository{db: db}
}

func (r *WeeklyReportRepository) Create(ctx context.Context, report *model.WeeklyReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("create weekly report: %w", err)
	}
	return nil
}

func (r *WeeklyReportRepository) Latest(ctx context.Context) (*model.WeeklyReport, error) {
	var report model.WeeklyReport
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").First(&report).Error; err != nil {
		return nil, fmt.Errorf("find latest weekly report: %w", err)
	}
	return &report, nil
}
