package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-report-bot/internal/config"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/model"
)

var entries = []model.ReportEntry{
	{Day: "2026-10-14", FirstName: "Иван", LastName: "Петров", Text: "Сделал вёрстку главной страницы", HasTasks: true},
	{Day: "2026-10-15", FirstName: "Anar", LastName: "Məmmədov"},
}

func TestPrompt(t *testing.T) {
	ru := Prompt(entries, model.LanguageRU)
	assert.Contains(t, ru, "\n2026-10-14 - Иван Петров:\nСделал вёрстку главной страницы\n")
	assert.Contains(t, ru, "\n2026-10-15 - Anar Məmmədov:\nЗадач не было\n")
	assert.Contains(t, ru, "Отчет должен быть на русском языке")

	az := Prompt(entries, model.LanguageAZ)
	assert.Contains(t, az, "2026-10-15 - Anar Məmmədov:\nTapşırıq olmayıb")
	assert.Contains(t, az, "Azərbaycan dilində")
}

func TestSummarize(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "cmpl-1",
			"object": "chat.completion",
			"created": 1760000000,
			"model": "deepseek-chat",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "📊 Итоги недели"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`)
	}))
	defer srv.Close()

	client := New(config.AI{APIKey: "test-key", BaseURL: srv.URL, Model: "deepseek-chat", Timeout: 5 * time.Second}, sl.Discard())

	text, err := client.Summarize(context.Background(), entries, model.LanguageRU)
	require.NoError(t, err)
	assert.Equal(t, "📊 Итоги недели", text)

	assert.Equal(t, "deepseek-chat", got["model"])
	assert.InDelta(t, 0.7, got["temperature"], 1e-9)
	assert.EqualValues(t, 4000, got["max_tokens"])
}

func TestSummarizeFailures(t *testing.T) {
	_, err := New(config.AI{Model: "deepseek-chat"}, sl.Discard()).Summarize(context.Background(), entries, model.LanguageRU)
	assert.ErrorIs(t, err, ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":0,"model":"deepseek-chat","choices":[]}`)
	}))
	defer srv.Close()

	client := New(config.AI{APIKey: "k", BaseURL: srv.URL, Model: "deepseek-chat"}, sl.Discard())
	_, err = client.Summarize(context.Background(), entries, model.LanguageRU)
	assert.Error(t, err)
}

func TestBudgetCoversRetries(t *testing.T) {
	assert.Equal(t, 3*time.Minute, Budget(config.AI{Timeout: time.Minute}))
	assert.Zero(t, Budget(config.AI{}))
}
