// Package ai writes weekly summaries with DeepSeek through its OpenAI-compatible
// chat completions API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"daily-report-bot/internal/config"
	"daily-report-bot/internal/model"
)

const (
	temperature = 0.7
	maxTokens   = 4000
	maxRetries  = 2
)

var ErrNotConfigured = errors.New("ai: api key is not set")

// Client summarizes a week of daily reports.
type Client struct {
	api   openai.Client
	model string
	ready bool
	log   *slog.Logger
}

// Budget is the longest a Summarize call can take with every retry timing out.
func Budget(cfg config.AI) time.Duration {
	return cfg.Timeout * (maxRetries + 1)
}

func New(cfg config.AI, log *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(maxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+"/"))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &Client{
		api:   openai.NewClient(opts...),
		model: cfg.Model,
		ready: cfg.APIKey != "",
		log:   log.With(slog.String("component", "ai")),
	}
}

// Summarize asks the model for a structured weekly report in lang.
func (c *Client) Summarize(ctx context.Context, entries []model.ReportEntry, lang model.Language) (string, error) {
	if !c.ready {
		return "", ErrNotConfigured
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(Prompt(entries, lang))},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("deepseek completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("deepseek completion: empty choices")
	}

	c.log.Info("weekly summary generated",
		slog.Int("entries", len(entries)),
		slog.Int64("tokens", resp.Usage.TotalTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// Prompt builds the instruction followed by every entry as
// "YYYY-MM-DD - First Last:\ntext".
func Prompt(entries []model.ReportEntry, lang model.Language) string {
	noTasks := "Задач не было"
	if lang == model.LanguageAZ {
		noTasks = "Tapşırıq olmayıb"
	}

	var data strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&data, "\n%s - %s %s:\n", e.Day, e.FirstName, e.LastName)
		if e.HasTasks {
			data.WriteString(e.Text)
		} else {
			data.WriteString(noTasks)
		}
		data.WriteString("\n")
	}

	if lang == model.LanguageAZ {
		return fmt.Sprintf(promptAZ, data.String())
	}
	return fmt.Sprintf(promptRU, data.String())
}

const promptRU = `Ты - профессиональный аналитик. Создай детальный и структурированный отчет о работе команды за неделю на основе ежедневных отчетов сотрудников.

Исходные данные:
%s

Требования к отчету:
1. Структурируй информацию по дням недели
2. Выдели ключевые достижения команды
3. Сгруппируй задачи по категориям (если возможно)
4. Укажи общую статистику (количество выполненных задач, активность сотрудников)
5. Используй профессиональный стиль изложения
6. Отчет должен быть на русском языке
7. Используй emoji для лучшей читаемости

Формат отчета должен быть удобен для чтения руководством.`

const promptAZ = `Sən peşəkar analitiksan. İşçilərin gündəlik hesabatları əsasında həftəlik komanda işi haqqında ətraflı və strukturlaşdırılmış hesabat yarat.

İlkin məlumatlar:
%s

Hesabat tələbləri:
1. Məlumatı həftənin günlərinə görə strukturlaşdır
2. Komandanın əsas nailiyyətlərini vurğula
3. Tapşırıqları kateqoriyalara görə qruplaşdır (mümkünsə)
4. Ümumi statistika göstər (yerinə yetirilmiş tapşırıqların sayı, işçilərin aktivliyi)
5. Peşəkar üslubda təqdim et
6. Hesabat Azərbaycan dilində olmalıdır
7. Daha yaxşı oxunaqlılıq üçün emoji istifadə et

Hesabat formatı rəhbərlik tərəfindən oxumaq üçün rahat olmalıdır.`
