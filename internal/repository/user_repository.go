package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"daily-report-bot/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByTelegramID returns gorm.ErrRecordNotFound (wrapped) for unknown users.
func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user %d: %w", telegramID, err)
	}
	return &user, nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("first_name, last_name").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) ListActiveByWorkTime(ctx context.Context, workTime model.WorkTime) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("is_active = ? AND work_time = ?", true, workTime).
		Order("first_name, last_name").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users by work time: %w", err)
	}
	return users, nil
}

func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// UpdateFields applies a partial update keyed by column name.
func (r *UserRepository) UpdateFields(ctx context.Context, telegramID int64, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("telegram_id = ?", telegramID).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update user %d: %w", telegramID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %d: %w", telegramID, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteWithReports removes the user and all of their daily reports in one transaction.
func (r *UserRepository) DeleteWithReports(ctx context.Context, telegramID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("telegram_id = ?", telegramID).Delete(&model.User{})
		if res.Error != nil {
			return fmt.Errorf("delete user %d: %w", telegramID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete user %d: %w", telegramID, gorm.ErrRecordNotFound)
		}
		if err := tx.Where("telegram_id = ?", telegramID).Delete(&model.DailyReport{}).Error; err != nil {
			return fmt.Errorf("delete reports of %d: %w", telegramID, err)
		}
		return nil
	})
}
