package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "111,222")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, []int64{111, 222}, cfg.AdminIDs)
	assert.Equal(t, "daily_reports.db", cfg.DatabaseURL)
	assert.Equal(t, "Asia/Baku", cfg.Location().String())
	assert.Equal(t, "18:00", cfg.Schedule.ShiftEndA)
	assert.Equal(t, "19:00", cfg.Schedule.ShiftEndB)
	assert.Equal(t, time.Hour, cfg.Schedule.ReminderInterval)
	assert.Equal(t, time.Hour, cfg.Schedule.ReminderCooldown)
	assert.Equal(t, 23, cfg.Schedule.ReminderQuietHour)
	assert.Equal(t, "23:59", cfg.Schedule.DailyDigest)
	assert.Equal(t, 5, cfg.Schedule.WeeklyDay)
	assert.Equal(t, 10, cfg.MinReportLength)
	assert.Equal(t, 48*time.Hour, cfg.Telegram.CallbackMaxAge)
	assert.Equal(t, 2*time.Minute, cfg.GenerationLockTTL)
	assert.Equal(t, time.Minute, cfg.AI.Timeout)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			TelegramToken: "t",
			Timezone:      "Asia/Baku",
			Schedule: Schedule{
				ShiftEndA:        "18:00",
				ShiftEndB:        "19:00",
				ReminderInterval: time.Hour,
				DailyDigest:      "23:59",
				WeeklyDay:        5,
				WeeklyTime:       "00:00",
			},
			MinReportLength: 10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "bad shift time", mutate: func(c *Config) { c.Schedule.ShiftEndA = "25:00" }, wantErr: true},
		{name: "bad weekday", mutate: func(c *Config) { c.Schedule.WeeklyDay = 7 }, wantErr: true},
		{name: "lock shorter than two ai attempts", mutate: func(c *Config) {
			c.AI.Timeout = time.Minute
			c.GenerationLockTTL = 90 * time.Second
		}, wantErr: true},
		{name: "lock fits ai attempt", mutate: func(c *Config) {
			c.AI.Timeout = time.Minute
			c.GenerationLockTTL = 2 * time.Minute
		}},
		{name: "interval too small", mutate: func(c *Config) { c.Schedule.ReminderInterval = time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 5, m)

	for _, bad := range []string{"", "18", "18:60", "aa:00", "18:00:00"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}
