package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"daily-report-bot/internal/model"
)

// RegistrationInput is what the registration flow collected.
type RegistrationInput struct {
	TelegramID int64
	FirstName  string
	LastName   string
	WorkTime   model.WorkTime
	Language   model.Language
}

// UserService manages employee profiles.
type UserService struct {
	users UserStore
	auth  *AuthService
}

func NewUserService(users UserStore, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// Get returns ErrUserNotFound for unknown ids.
func (s *UserService) Get(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Register creates the user. The admin flag comes from the allow-list.
func (s *UserService) Register(ctx context.Context, in RegistrationInput) (*model.User, error) {
	if in.Language == "" {
		in.Language = model.LanguageRU
	}
	if in.WorkTime == "" {
		in.WorkTime = model.ShiftA
	}
	user := &model.User{
		TelegramID: in.TelegramID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Language:   in.Language,
		WorkTime:   in.WorkTime,
		IsActive:   true,
		IsAdmin:    s.auth.IsAllowListed(in.TelegramID),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdateFirstName(ctx context.Context, telegramID int64, name string) error {
	return s.update(ctx, telegramID, "first_name", name)
}

func (s *UserService) UpdateLastName(ctx context.Context, telegramID int64, name string) error {
	return s.update(ctx, telegramID, "last_name", name)
}

func (s *UserService) UpdateWorkTime(ctx context.Context, telegramID int64, workTime model.WorkTime) error {
	return s.update(ctx, telegramID, "work_time", workTime)
}

func (s *UserService) UpdateLanguage(ctx context.Context, telegramID int64, lang model.Language) error {
	return s.update(ctx, telegramID, "language", lang)
}

func (s *UserService) update(ctx context.Context, telegramID int64, column string, value interface{}) error {
	err := s.users.UpdateFields(ctx, telegramID, map[string]interface{}{column: value})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *UserService) ListActive(ctx context.Context) ([]model.User, error) {
	return s.users.ListActive(ctx)
}

// IsAdmin resolves admin status of a possibly unregistered user.
func (s *UserService) IsAdmin(user *model.User, telegramID int64) bool {
	return s.auth.IsAdmin(telegramID, user)
}

// Delete removes target and its reports on behalf of actor. Self deletion and
// deletion of admins are refused.
func (s *UserService) Delete(ctx context.Context, actorID, targetID int64) (*model.User, error) {
	if actorID == targetID {
		return nil, ErrCannotDeleteSelf
	}
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if s.auth.IsAdmin(targetID, target) {
		return nil, ErrCannotDeleteAdmin
	}
	if err := s.users.DeleteWithReports(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return target, nil
}
