package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/model"
)

// Stats are the numbers shown on the admin panel.
type Stats struct {
	TotalUsers   int64
	ActiveUsers  int64
	TodayReports int64
	WeekReports  int64
}

// Breakdown splits active users by what they reported on one day.
type Breakdown struct {
	Day          string
	Total        int
	WithTasks    []model.User
	NoTasks      []model.User
	NotSubmitted []model.User
}

func (b Breakdown) Submitted() int {
	return len(b.WithTasks) + len(b.NoTasks)
}

// AdminService aggregates data for administrators.
type AdminService struct {
	users   UserStore
	reports ReportStore
	auth    *AuthService
	texts   *i18n.Translator
	clock   clockwork.Clock
	loc     *time.Location
}

func NewAdminService(users UserStore, reports ReportStore, auth *AuthService, texts *i18n.Translator, clock clockwork.Clock, loc *time.Location) *AdminService {
	return &AdminService{users: users, reports: reports, auth: auth, texts: texts, clock: clock, loc: loc}
}

func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	now := s.clock.Now()
	today := model.Day(now, s.loc)
	weekStart := model.WeekStart(now, s.loc).Format(model.DayLayout)

	active, err := s.users.CountActive(ctx)
	if err != nil {
		return Stats{}, err
	}
	todayCount, err := s.reports.CountBetween(ctx, today, today)
	if err != nil {
		return Stats{}, err
	}
	weekCount, err := s.reports.CountBetween(ctx, weekStart, today)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalUsers:   active,
		ActiveUsers:  active,
		TodayReports: todayCount,
		WeekReports:  weekCount,
	}, nil
}

func (s *AdminService) FormatStats(lang model.Language, st Stats) string {
	return s.texts.Text(lang, i18n.Stats, st.TotalUsers, st.ActiveUsers, st.TodayReports, st.WeekReports)
}

// Roster lists active users.
func (s *AdminService) Roster(ctx context.Context) ([]model.User, error) {
	return s.users.ListActive(ctx)
}

func (s *AdminService) FormatRoster(lang model.Language, users []model.User) string {
	var b strings.Builder
	for _, u := range users {
		badge := ""
		if s.auth.IsAdmin(u.TelegramID, &u) {
			badge = " 👑"
		}
		fmt.Fprintf(&b, "• %s %s (%s)%s\n", u.FirstName, u.LastName, u.WorkTime, badge)
	}
	return s.texts.Text(lang, i18n.UserList, len(users), b.String())
}

// Deletable filters the roster down to users actor may delete.
func (s *AdminService) Deletable(actorID int64, users []model.User) []model.User {
	var out []model.User
	for _, u := range users {
		if u.TelegramID == actorID || s.auth.IsAdmin(u.TelegramID, &u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Today returns the breakdown for the current day.
func (s *AdminService) Today(ctx context.Context) (Breakdown, error) {
	return s.DailyBreakdown(ctx, model.Day(s.clock.Now(), s.loc))
}

func (s *AdminService) DailyBreakdown(ctx context.Context, day string) (Breakdown, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return Breakdown{}, err
	}
	reports, err := s.reports.ListByDay(ctx, day)
	if err != nil {
		return Breakdown{}, err
	}

	byUser := make(map[int64]model.DailyReport, len(reports))
	for _, r := range reports {
		byUser[r.TelegramID] = r
	}

	b := Breakdown{Day: day, Total: len(users)}
	for _, u := range users {
		report, ok := byUser[u.TelegramID]
		switch {
		case !ok:
			b.NotSubmitted = append(b.NotSubmitted, u)
		case report.HasTasks:
			b.WithTasks = append(b.WithTasks, u)
		default:
			b.NoTasks = append(b.NoTasks, u)
		}
	}
	return b, nil
}

// FormatBreakdown renders the digest text. The with-tasks section is always shown,
// the others only when non-empty.
func (s *AdminService) FormatBreakdown(lang model.Language, b Breakdown) string {
	var details strings.Builder
	details.WriteString(s.texts.Text(lang, i18n.DetailsHeader))
	details.WriteString(s.texts.Text(lang, i18n.DetailsWithTasks))
	writeNames(&details, b.WithTasks)
	if len(b.NoTasks) > 0 {
		details.WriteString(s.texts.Text(lang, i18n.DetailsNoTasks))
		writeNames(&details, b.NoTasks)
	}
	if len(b.NotSubmitted) > 0 {
		details.WriteString(s.texts.Text(lang, i18n.DetailsNotSubmitted))
		writeNames(&details, b.NotSubmitted)
	}

	date := b.Day
	if t, err := time.Parse(model.DayLayout, b.Day); err == nil {
		date = t.Format("02.01.2006")
	}
	return s.texts.Text(lang, i18n.DailyReportSummary,
		date, b.Total, b.Submitted(), len(b.NotSubmitted), len(b.NoTasks), details.String())
}

func writeNames(b *strings.Builder, users []model.User) {
	for _, u := range users {
		fmt.Fprintf(b, "  • %s %s\n", u.FirstName, u.LastName)
	}
}
