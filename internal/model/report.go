package model

import "time"

// DayLayout formats the calendar day a report belongs to.
const DayLayout = "2006-01-02"

// DailyReport is one employee's end-of-day report. At most one row exists per
// (TelegramID, ReportDay).
type DailyReport struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	TelegramID    int64     `gorm:"uniqueIndex:idx_report_user_day;not null"`
	ReportDay     string    `gorm:"size:10;uniqueIndex:idx_report_user_day;index;not null"`
	ReportDate    time.Time `gorm:"not null"`
	ReportText    *string   `gorm:"type:text"`
	HasTasks      bool      `gorm:"not null"`
	SubmittedAt   time.Time `gorm:"not null"`
	ReminderCount int       `gorm:"not null;default:0"`
}

// WeeklyReport is an immutable record of a generated weekly summary.
type WeeklyReport struct {
	ID         uint      `gorm:"primaryKey"`
	WeekStart  time.Time `gorm:"not null"`
	WeekEnd    time.Time `gorm:"not null"`
	ReportText string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// ReportEntry is a daily report joined with its author's name, the input of weekly
// summaries.
type ReportEntry struct {
	Day       string
	FirstName string
	LastName  string
	Text      string
	HasTasks  bool
}

// Date returns the entry's day formatted as dd.mm.yyyy.
func (e ReportEntry) Date() string {
	t, err := time.Parse(DayLayout, e.Day)
	if err != nil {
		return e.Day
	}
	return t.Format("02.01.2006")
}

// Day returns the calendar day of t in loc.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WeekStart returns Monday 00:00 of the week containing t in loc.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
