package service

import "daily-report-bot/internal/model"

// AuthService decides who is an administrator: anyone on the static allow-list or
// with the stored admin flag.
type AuthService struct {
	allowList map[int64]struct{}
	ids       []int64
}

func NewAuthService(adminIDs []int64) *AuthService {
	s := &AuthService{allowList: make(map[int64]struct{}, len(adminIDs))}
	for _, id := range adminIDs {
		if _, dup := s.allowList[id]; dup {
			continue
		}
		s.allowList[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s
}

func (s *AuthService) IsAllowListed(telegramID int64) bool {
	_, ok := s.allowList[telegramID]
	return ok
}

// IsAdmin combines the allow-list with the user's stored flag. user may be nil.
func (s *AuthService) IsAdmin(telegramID int64, user *model.User) bool {
	if s.IsAllowListed(telegramID) {
		return true
	}
	return user != nil && user.IsAdmin
}

// AdminIDs returns the allow-list in configuration order.
func (s *AuthService) AdminIDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}
