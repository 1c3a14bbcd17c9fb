// Package cache keeps reminder cooldowns and generation locks in Redis so they
// survive restarts and are shared between replicas.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"daily-report-bot/internal/config"
)

// reminderTTL outlives the longest cooldown and the day a count belongs to.
const reminderTTL = 48 * time.Hour

func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "cache.Connect"
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// ReminderLog stores the last reminder time and a per-day counter per user.
type ReminderLog struct {
	db *redis.Client
}

func NewReminderLog(db *redis.Client) *ReminderLog {
	return &ReminderLog{db: db}
}

func lastKey(telegramID int64) string {
	return "reminder:last:" + strconv.FormatInt(telegramID, 10)
}

func countKey(telegramID int64, day string) string {
	return "reminder:count:" + strconv.FormatInt(telegramID, 10) + ":" + day
}

func (l *ReminderLog) Last(ctx context.Context, telegramID int64) (time.Time, bool, error) {
	const op = "cache.ReminderLog.Last"
	val, err := l.db.Get(ctx, lastKey(telegramID)).Int64()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return time.Unix(0, val), true, nil
}

func (l *ReminderLog) Record(ctx context.Context, telegramID int64, at time.Time, day string) error {
	const op = "cache.ReminderLog.Record"
	_, err := l.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, lastKey(telegramID), at.UnixNano(), reminderTTL)
		pipe.Incr(ctx, countKey(telegramID, day))
		pipe.Expire(ctx, countKey(telegramID, day), reminderTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (l *ReminderLog) Count(ctx context.Context, telegramID int64, day string) (int, error) {
	const op = "cache.ReminderLog.Count"
	n, err := l.db.Get(ctx, countKey(telegramID, day)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// GenerationGuard is a SETNX lock with expiry.
type GenerationGuard struct {
	db *redis.Client
}

func NewGenerationGuard(db *redis.Client) *GenerationGuard {
	return &GenerationGuard{db: db}
}

func (g *GenerationGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "cache.GenerationGuard.Acquire"
	ok, err := g.db.SetNX(ctx, "lock:"+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

func (g *GenerationGuard) Release(ctx context.Context, key string) error {
	return g.db.Del(ctx, "lock:"+key).Err()
}
