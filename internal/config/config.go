package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken string  `env:"BOT_TOKEN" env-required:"true"`
	AdminIDs      []int64 `env:"ADMIN_IDS" env-separator:","`
	DatabaseURL   string  `env:"DATABASE_URL" env-default:"daily_reports.db"`
	Timezone      string  `env:"TIMEZONE" env-default:"Asia/Baku"`

	Schedule Schedule
	AI       AI
	Telegram Telegram
	Redis    Redis

	MinReportLength   int           `env:"MIN_REPORT_LENGTH" env-default:"10"`
	GenerationLockTTL time.Duration `env:"GENERATION_LOCK_TTL" env-default:"2m"`
	SessionTTL        time.Duration `env:"SESSION_TTL" env-default:"24h"`
	HTTPAddr          string        `env:"HTTP_ADDR" env-default:":9090"`
	PDFFontPath       string        `env:"PDF_FONT_PATH"`
	LogLevel          string        `env:"LOG_LEVEL" env-default:"info"`
	LogFile           string        `env:"LOG_FILE"`
}

// Schedule holds trigger times of the notification jobs, all in the org timezone.
type Schedule struct {
	ShiftEndA         string        `env:"NOTIFICATION_TIME_1" env-default:"18:00"`
	ShiftEndB         string        `env:"NOTIFICATION_TIME_2" env-default:"19:00"`
	ReminderInterval  time.Duration `env:"REMINDER_INTERVAL" env-default:"60m"`
	ReminderCooldown  time.Duration `env:"REMINDER_COOLDOWN" env-default:"1h"`
	ReminderQuietHour int           `env:"REMINDER_QUIET_HOUR" env-default:"23"`
	DailyDigest       string        `env:"DAILY_DIGEST_TIME" env-default:"23:59"`
	WeeklyDay         int           `env:"WEEKLY_REPORT_DAY" env-default:"5"`
	WeeklyTime        string        `env:"WEEKLY_REPORT_TIME" env-default:"00:00"`
}

type AI struct {
	APIKey  string        `env:"DEEPSEEK_API_KEY"`
	BaseURL string        `env:"DEEPSEEK_API_URL" env-default:"https://api.deepseek.com/v1"`
	Model   string        `env:"DEEPSEEK_MODEL" env-default:"deepseek-chat"`
	Timeout time.Duration `env:"AI_TIMEOUT" env-default:"60s"`
}

type Telegram struct {
	SendTimeout    time.Duration `env:"SEND_TIMEOUT" env-default:"30s"`
	SendRate       float64       `env:"SEND_RATE" env-default:"25"`
	CallbackMaxAge time.Duration `env:"CALLBACK_MAX_AGE" env-default:"48h"`
}

// Redis is optional; an empty Addr keeps reminder cooldowns and locks in memory.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}

	for name, value := range map[string]string{
		"NOTIFICATION_TIME_1": c.Schedule.ShiftEndA,
		"NOTIFICATION_TIME_2": c.Schedule.ShiftEndB,
		"DAILY_DIGEST_TIME":   c.Schedule.DailyDigest,
		"WEEKLY_REPORT_TIME":  c.Schedule.WeeklyTime,
	} {
		if _, _, err := ParseClock(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Schedule.WeeklyDay < 0 || c.Schedule.WeeklyDay > 6 {
		return fmt.Errorf("WEEKLY_REPORT_DAY must be 0-6 (0 is Sunday), got %d", c.Schedule.WeeklyDay)
	}
	if c.Schedule.ReminderInterval < time.Minute {
		return fmt.Errorf("REMINDER_INTERVAL must be at least 1m, got %s", c.Schedule.ReminderInterval)
	}
	// Weekly generation gives the AI half of the lock; one full attempt must fit.
	if c.AI.Timeout > 0 && c.GenerationLockTTL < 2*c.AI.Timeout {
		return fmt.Errorf("GENERATION_LOCK_TTL (%s) must be at least twice AI_TIMEOUT (%s)", c.GenerationLockTTL, c.AI.Timeout)
	}
	if c.MinReportLength < 1 {
		c.MinReportLength = 10
	}
	if c.Telegram.SendRate <= 0 {
		c.Telegram.SendRate = 25
	}
	return nil
}

// Location returns the org timezone, UTC when it cannot be loaded.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseClock parses "HH:MM".
func ParseClock(value string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format %q, want HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}
