package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reserved = []string{"👤 Мой профиль", "📊 Отправить отчет", "❓ Помощь", "⚙️ Админ-панель"}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "cyrillic", input: "Иван", want: "Иван", ok: true},
		{name: "trimmed", input: "  Петров  ", want: "Петров", ok: true},
		{name: "azerbaijani", input: "Məryəm-Anna", want: "Məryəm-Anna", ok: true},
		{name: "apostrophe", input: "O'Connor", want: "O'Connor", ok: true},
		{name: "two words", input: "Anna Maria", want: "Anna Maria", ok: true},
		{name: "turkish dotted", input: "İsmayıl Çələbi", want: "İsmayıl Çələbi", ok: true},
		{name: "empty", input: "   "},
		{name: "too short", input: "A"},
		{name: "too long", input: strings.Repeat("a", 51)},
		{name: "exactly fifty", input: strings.Repeat("я", 50), want: strings.Repeat("я", 50), ok: true},
		{name: "command", input: "/start"},
		{name: "menu label", input: "❓ Помощь"},
		{name: "digits", input: "Ivan2"},
		{name: "punctuation", input: "Ivan!"},
		{name: "no letters", input: "--''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input, reserved)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ValidateName(got, reserved)
			assert.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestValidateReportText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "ok", input: "Сделал отчет по продажам"},
		{name: "exactly ten", input: "0123456789"},
		{name: "ten after trim", input: "   0123456789   "},
		{name: "nine", input: "012345678", wantErr: ErrReportTooShort},
		{name: "cyrillic counts runes", input: "Исправил б", wantErr: nil},
		{name: "blank", input: " \n\t ", wantErr: ErrReportEmpty},
		{name: "empty", input: "", wantErr: ErrReportEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReportText(tt.input, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.input), got)
		})
	}
}
