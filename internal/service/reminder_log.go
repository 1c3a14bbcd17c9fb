package service

import (
	"context"
	"sync"
	"time"
)

// ReminderLog remembers when each user was last reminded and how many reminders
// they got on a given day.
type ReminderLog interface {
	Last(ctx context.Context, telegramID int64) (time.Time, bool, error)
	Record(ctx context.Context, telegramID int64, at time.Time, day string) error
	Count(ctx context.Context, telegramID int64, day string) (int, error)
}

type reminderRecord struct {
	last  time.Time
	day   string
	count int
}

// MemoryReminderLog is a process-local ReminderLog. It is lost on restart.
type MemoryReminderLog struct {
	mu      sync.Mutex
	records map[int64]reminderRecord
}

func NewMemoryReminderLog() *MemoryReminderLog {
	return &MemoryReminderLog{records: make(map[int64]reminderRecord)}
}

func (l *MemoryReminderLog) Last(_ context.Context, telegramID int64) (time.Time, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[telegramID]
	return rec.last, ok, nil
}

func (l *MemoryReminderLog) Record(_ context.Context, telegramID int64, at time.Time, day string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec := l.records[telegramID]
	if rec.day != day {
		rec.day = day
		rec.count = 0
	}
	rec.last = at
	rec.count++
	l.records[telegramID] = rec
	return nil
}

func (l *MemoryReminderLog) Count(_ context.Context, telegramID int64, day string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[telegramID]
	if !ok || rec.day != day {
		return 0, nil
	}
	return rec.count, nil
}
