package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkTimeCode(t *testing.T) {
	w, ok := ParseWorkTimeCode("10-19")
	assert.True(t, ok)
	assert.Equal(t, ShiftB, w)

	w, ok = ParseWorkTimeCode("9-18")
	assert.True(t, ok)
	assert.Equal(t, ShiftA, w)

	w, ok = ParseWorkTimeCode("8-17")
	assert.False(t, ok)
	assert.Equal(t, ShiftA, w)
}

func TestWorkTimeEnd(t *testing.T) {
	h, m := ShiftA.End()
	assert.Equal(t, 18, h)
	assert.Equal(t, 0, m)
	assert.Equal(t, "19:00", ShiftB.EndLabel())
}

func TestWeekStart(t *testing.T) {
	loc := time.FixedZone("AZT", 4*3600)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "monday", now: time.Date(2026, 10, 12, 10, 0, 0, 0, loc), want: "2026-10-12"},
		{name: "friday", now: time.Date(2026, 10, 16, 0, 0, 0, 0, loc), want: "2026-10-12"},
		{name: "sunday", now: time.Date(2026, 10, 18, 23, 59, 0, 0, loc), want: "2026-10-12"},
		{name: "utc evening is next local day", now: time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC), want: "2026-10-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.now, loc).Format(DayLayout))
		})
	}
}

func TestReportEntryDate(t *testing.T) {
	assert.Equal(t, "16.10.2026", ReportEntry{Day: "2026-10-16"}.Date())
	assert.Equal(t, "garbage", ReportEntry{Day: "garbage"}.Date())
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageAZ, ParseLanguage("az"))
	assert.Equal(t, LanguageRU, ParseLanguage("ru"))
	assert.Equal(t, LanguageRU, ParseLanguage("en"))
}
