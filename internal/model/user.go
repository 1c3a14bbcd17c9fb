package model

import "time"

// Language is the interface language chosen at registration.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageAZ Language = "az"
)

// ParseLanguage maps a callback code to a Language, defaulting to Russian.
func ParseLanguage(code string) Language {
	if Language(code) == LanguageAZ {
		return LanguageAZ
	}
	return LanguageRU
}

// WorkTime is one of the two supported shifts.
type WorkTime string

const (
	ShiftA WorkTime = "9:00-18:00"
	ShiftB WorkTime = "10:00-19:00"
)

// WorkTimes lists shifts in keyboard order.
var WorkTimes = []WorkTime{ShiftA, ShiftB}

// Code is the short form used in callback payloads.
func (w WorkTime) Code() string {
	switch w {
	case ShiftB:
		return "10-19"
	default:
		return "9-18"
	}
}

// End returns the local hour and minute the shift finishes.
func (w WorkTime) End() (int, int) {
	switch w {
	case ShiftB:
		return 19, 0
	default:
		return 18, 0
	}
}

// EndLabel is the shift end in "HH:MM".
func (w WorkTime) EndLabel() string {
	h, m := w.End()
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format("15:04")
}

// ParseWorkTimeCode maps a callback code to a shift. Unknown codes fall back to ShiftA;
// the second return value tells whether the code was recognised.
func ParseWorkTimeCode(code string) (WorkTime, bool) {
	for _, w := range WorkTimes {
		if w.Code() == code {
			return w, true
		}
	}
	return ShiftA, false
}

// User is a registered employee.
type User struct {
	ID         uint     `gorm:"primaryKey"`
	TelegramID int64    `gorm:"uniqueIndex;not null"`
	FirstName  string   `gorm:"size:100;not null"`
	LastName   string   `gorm:"size:100;not null"`
	Language   Language `gorm:"size:2;not null;default:ru"`
	WorkTime   WorkTime `gorm:"size:20;not null"`
	IsActive   bool     `gorm:"not null;default:true"`
	IsAdmin    bool     `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
