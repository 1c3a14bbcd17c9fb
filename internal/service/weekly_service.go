package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/metrics"
	"daily-report-bot/internal/model"
)

// Summarizer turns a week of reports into prose.
type Summarizer interface {
	Summarize(ctx context.Context, entries []model.ReportEntry, lang model.Language) (string, error)
}

// DocumentRenderer renders the weekly text into downloadable files. Dates are
// dd.mm.yyyy strings.
type DocumentRenderer interface {
	DOCX(text, from, to string) ([]byte, error)
	PDF(text, from, to string) ([]byte, error)
}

// WeeklyReport is a generated weekly summary ready for delivery.
type WeeklyReport struct {
	From     string
	To       string
	Text     string
	DOCX     []byte
	PDF      []byte
	DOCXName string
	PDFName  string
}

// WeeklyReportService runs the weekly pipeline: collect, summarize, render, store.
type WeeklyReportService struct {
	reports    ReportStore
	weekly     WeeklyStore
	summarizer Summarizer
	renderer   DocumentRenderer
	texts      *i18n.Translator
	clock      clockwork.Clock
	loc        *time.Location
	log        *slog.Logger

	summaryTimeout time.Duration
}

func NewWeeklyReportService(
	reports ReportStore,
	weekly WeeklyStore,
	summarizer Summarizer,
	renderer DocumentRenderer,
	texts *i18n.Translator,
	clock clockwork.Clock,
	loc *time.Location,
	log *slog.Logger,
) *WeeklyReportService {
	return &WeeklyReportService{
		reports:    reports,
		weekly:     weekly,
		summarizer: summarizer,
		renderer:   renderer,
		texts:      texts,
		clock:      clock,
		loc:        loc,
		log:        log,
	}
}

// WithSummaryTimeout bounds the AI step. A slower summarizer is abandoned for
// the fallback text.
func (s *WeeklyReportService) WithSummaryTimeout(d time.Duration) *WeeklyReportService {
	s.summaryTimeout = d
	return s
}

// Generate builds the report for Monday..today. It returns ErrNoReports when the
// week has no daily reports.
func (s *WeeklyReportService) Generate(ctx context.Context, lang model.Language) (*WeeklyReport, error) {
	now := s.clock.Now()
	start := model.WeekStart(now, s.loc)
	end := model.StartOfDay(now, s.loc)

	entries, err := s.reports.EntriesBetween(ctx, start.Format(model.DayLayout), end.Format(model.DayLayout))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoReports
	}

	text := s.summarize(ctx, entries, lang)

	from, to := start.Format("02.01.2006"), end.Format("02.01.2006")
	docx, err := s.renderer.DOCX(text, from, to)
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	pdf, err := s.renderer.PDF(text, from, to)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	if err := s.weekly.Create(ctx, &model.WeeklyReport{
		WeekStart:  start.UTC(),
		WeekEnd:    end.UTC(),
		ReportText: text,
	}); err != nil {
		s.log.Error("store weekly report", sl.Err(err))
	}

	base := fmt.Sprintf("weekly_report_%s_%s", from, to)
	return &WeeklyReport{
		From:     from,
		To:       to,
		Text:     text,
		DOCX:     docx,
		PDF:      pdf,
		DOCXName: base + ".docx",
		PDFName:  base + ".pdf",
	}, nil
}

func (s *WeeklyReportService) summarize(ctx context.Context, entries []model.ReportEntry, lang model.Language) string {
	if s.summarizer != nil {
		sumCtx, cancel := s.summaryContext(ctx)
		text, err := s.summarizer.Summarize(sumCtx, entries, lang)
		cancel()
		if err == nil && strings.TrimSpace(text) != "" {
			metrics.WeeklySummaries.WithLabelValues("ai").Inc()
			return text
		}
		if err != nil {
			s.log.Warn("ai summary failed, using fallback", sl.Err(err))
		}
	}
	metrics.WeeklySummaries.WithLabelValues("fallback").Inc()
	return FallbackSummary(s.texts, entries, lang)
}

// summaryContext gives the AI step at most half of the time left on ctx, so
// rendering and storing the fallback still fit in the caller's deadline.
func (s *WeeklyReportService) summaryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	budget := s.summaryTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if half := time.Until(deadline) / 2; budget <= 0 || half < budget {
			budget = half
		}
	}
	if budget <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, budget)
}

// FallbackSummary is the plain-text weekly summary used when the AI is unavailable:
// a title with the covered period, then every report grouped by date.
func FallbackSummary(texts *i18n.Translator, entries []model.ReportEntry, lang model.Language) string {
	if len(entries) == 0 {
		return ""
	}
	sorted := make([]model.ReportEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	var b strings.Builder
	b.WriteString(texts.Text(lang, i18n.FallbackTitle, sorted[0].Date(), sorted[len(sorted)-1].Date()))

	noTasks := texts.Text(lang, i18n.NoTasksLabel)
	for i := 0; i < len(sorted); {
		day := sorted[i].Day
		fmt.Fprintf(&b, "📅 %s:\n", sorted[i].Date())
		for ; i < len(sorted) && sorted[i].Day == day; i++ {
			e := sorted[i]
			text := e.Text
			if !e.HasTasks {
				text = noTasks
			}
			fmt.Fprintf(&b, "  • %s %s: %s\n", e.FirstName, e.LastName, text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
