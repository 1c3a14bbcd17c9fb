package bot

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/retry"
	"daily-report-bot/internal/metrics"
	"daily-report-bot/internal/model"
)

// Sender is the outbound side of the bot: every request passes a rate limiter
// and is retried on transient Telegram errors.
type Sender struct {
	api     API
	texts   *i18n.Translator
	limiter *rate.Limiter
	policy  retry.Policy
	log     *slog.Logger
}

func NewSender(api API, texts *i18n.Translator, perSecond float64, log *slog.Logger) *Sender {
	limit, burst := rate.Inf, 1
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
		if int(perSecond) > burst {
			burst = int(perSecond)
		}
	}
	return &Sender{
		api:     api,
		texts:   texts,
		limiter: rate.NewLimiter(limit, burst),
		policy: retry.Policy{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Retryable:       isRetryable,
			Wait:            retryAfter,
		},
		log: log,
	}
}

// Send delivers c and returns the resulting message.
func (s *Sender) Send(ctx context.Context, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	var msg tgbotapi.Message
	err := s.do(ctx, func() error {
		var err error
		msg, err = s.api.Send(c)
		return err
	})
	return msg, err
}

// Request is Send for methods that do not return a message.
func (s *Sender) Request(ctx context.Context, c tgbotapi.Chattable) error {
	return s.do(ctx, func() error {
		_, err := s.api.Request(c)
		return err
	})
}

func (s *Sender) do(ctx context.Context, op func() error) error {
	attempt := 0
	return retry.Do(ctx, s.policy, func() error {
		if attempt > 0 {
			metrics.SendRetries.Inc()
		}
		attempt++
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		return op()
	})
}

func (s *Sender) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := s.Send(ctx, tgbotapi.NewMessage(chatID, text))
	return err
}

func (s *Sender) SendReportPrompt(ctx context.Context, chatID int64, lang model.Language, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = reportTypeKeyboard(s.texts, lang)
	_, err := s.Send(ctx, msg)
	return err
}

func (s *Sender) SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	_, err := s.Send(ctx, doc)
	return err
}

// isRetryable accepts rate limiting, server errors and network timeouts.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == http.StatusTooManyRequests || tgErr.Code >= http.StatusInternalServerError
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return strings.Contains(err.Error(), "timeout expired")
}

func retryAfter(err error) time.Duration {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) && tgErr.RetryAfter > 0 {
		return time.Duration(tgErr.RetryAfter) * time.Second
	}
	return 0
}

// isNotModified is returned when an edit leaves the message unchanged.
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
