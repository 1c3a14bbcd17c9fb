package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"daily-report-bot/internal/model"
)

// DailyReportRepository handles daily reports. Days are model.DayLayout strings.
type DailyReportRepository struct {
	db *gorm.DB
}

func NewDailyReportRepository(db *gorm.DB) *DailyReportRepository {
	return &DailyReportRepository{db: db}
}

// Create inserts a report. A second report for the same user and day fails with
// gorm.ErrDuplicatedKey (wrapped).
func (r *DailyReportRepository) Create(ctx context.Context, report *model.DailyReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *DailyReportRepository) Exists(ctx context.Context, telegramID int64, day string) (bool, error) {
	var report model.DailyReport
	err := r.db.WithContext(ctx).Select("id").
		Where("telegram_id = ? AND report_day = ?", telegramID, day).
		First(&report).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("find report: %w", err)
	}
}

func (r *DailyReportRepository) Find(ctx context.Context, telegramID int64, day string) (*model.DailyReport, error) {
	var report model.DailyReport
	if err := r.db.WithContext(ctx).Where("telegram_id = ? AND report_day = ?", telegramID, day).
		First(&report).Error; err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &report, nil
}

func (r *DailyReportRepository) ListByDay(ctx context.Context, day string) ([]model.DailyReport, error) {
	var reports []model.DailyReport
	if err := r.db.WithContext(ctx).Where("report_day = ?", day).
		Order("submitted_at").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports for %s: %w", day, err)
	}
	return reports, nil
}

// CountBetween counts reports with from <= day <= to.
func (r *DailyReportRepository) CountBetween(ctx context.Context, from, to string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DailyReport{}).
		Where("report_day BETWEEN ? AND ?", from, to).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}

// EntriesBetween returns reports with from <= day <= to joined with author names,
// ordered by day then name. Reports of deleted users are skipped.
func (r *DailyReportRepository) EntriesBetween(ctx context.Context, from, to string) ([]model.ReportEntry, error) {
	type row struct {
		ReportDay  string
		FirstName  string
		LastName   string
		ReportText *string
		HasTasks   bool
	}
	var rows []row
	if err := r.db.WithContext(ctx).Table("daily_reports").
		Select("daily_reports.report_day, users.first_name, users.last_name, daily_reports.report_text, daily_reports.has_tasks").
		Joins("JOIN users ON users.telegram_id = daily_reports.telegram_id").
		Where("daily_reports.report_day BETWEEN ? AND ?", from, to).
		Order("daily_reports.report_day, users.first_name, users.last_name").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list report entries: %w", err)
	}

	entries := make([]model.ReportEntry, 0, len(rows))
	for _, rw := range rows {
		entry := model.ReportEntry{
			Day:       rw.ReportDay,
			FirstName: rw.FirstName,
			LastName:  rw.LastName,
			HasTasks:  rw.HasTasks,
		}
		if rw.ReportText != nil {
			entry.Text = *rw.ReportText
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
