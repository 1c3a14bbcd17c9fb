package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"daily-report-bot/internal/ai"
	"daily-report-bot/internal/bot"
	"daily-report-bot/internal/cache"
	"daily-report-bot/internal/config"
	"daily-report-bot/internal/document"
	"daily-report-bot/internal/httpserver"
	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/model"
	"daily-report-bot/internal/repository"
	"daily-report-bot/internal/service"
	"daily-report-bot/internal/session"
)

// triggerJobs maps CLI job names to the notification job they run.
var triggerJobs = map[string]func(n *service.NotificationService) service.Job{
	"shift-end": func(n *service.NotificationService) service.Job {
		return func(ctx context.Context) error {
			return errors.Join(n.NotifyShiftEnd(ctx, model.ShiftA), n.NotifyShiftEnd(ctx, model.ShiftB))
		}
	},
	"reminders": func(n *service.NotificationService) service.Job { return n.SendReminders },
	"digest":    func(n *service.NotificationService) service.Job { return n.SendDailyDigest },
	"weekly":    func(n *service.NotificationService) service.Job { return n.SendWeeklyReport },
}

// app holds the wired dependencies of one process.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	db       *gorm.DB
	redis    *redis.Client
	notifier *service.NotificationService
	bot      *bot.Bot
	closers  []func()
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}
	if err := a.init(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) init(ctx context.Context) error {
	cfg := a.cfg
	loc := cfg.Location()
	clock := clockwork.NewRealClock()
	texts := i18n.New()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	a.db = db
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}

	var (
		reminders service.ReminderLog     = service.NewMemoryReminderLog()
		guard     service.GenerationGuard = service.NewMemoryGenerationGuard(clock)
	)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		a.redis = rdb
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		reminders = cache.NewReminderLog(rdb)
		guard = cache.NewGenerationGuard(rdb)
		a.log.Info("reminder log and locks in redis", slog.String("addr", cfg.Redis.Addr))
	}

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	weeklyRepo := repository.NewWeeklyReportRepository(db)

	auth := service.NewAuthService(cfg.AdminIDs)
	users := service.NewUserService(userRepo, auth)
	reports := service.NewReportService(reportRepo, reminders, clock, loc, cfg.MinReportLength,
		a.log.With(slog.String("component", "reports")))
	admin := service.NewAdminService(userRepo, reportRepo, auth, texts, clock, loc)
	weekly := service.NewWeeklyReportService(
		reportRepo,
		weeklyRepo,
		ai.New(cfg.AI, a.log),
		document.NewRenderer(clock, loc, cfg.PDFFontPath),
		texts,
		clock,
		loc,
		a.log.With(slog.String("component", "weekly")),
	).WithSummaryTimeout(ai.Budget(cfg.AI))

	api, err := bot.NewAPI(cfg.TelegramToken, cfg.Telegram.SendTimeout)
	if err != nil {
		return err
	}
	a.log.Info("authorized on telegram", slog.String("username", api.Self.UserName))

	sender := bot.NewSender(api, texts, cfg.Telegram.SendRate, a.log.With(slog.String("component", "sender")))
	a.notifier = service.NewNotificationService(
		userRepo, reports, admin, weekly, auth, reminders, sender, texts, clock, loc,
		service.NotificationOptions{
			Cooldown:  cfg.Schedule.ReminderCooldown,
			QuietHour: cfg.Schedule.ReminderQuietHour,
		},
		a.log.With(slog.String("component", "notifier")),
	)

	a.bot = bot.New(api, sender, bot.Deps{
		Users:    users,
		Reports:  reports,
		Admin:    admin,
		Weekly:   weekly,
		Notifier: a.notifier,
		Auth:     auth,
		Guard:    guard,
		Sessions: session.NewStore(session.DefaultSize, cfg.SessionTTL),
		Texts:    texts,
		Clock:    clock,
	}, bot.Options{
		CallbackMaxAge:    cfg.Telegram.CallbackMaxAge,
		GenerationLockTTL: cfg.GenerationLockTTL,
	}, a.log)

	return nil
}

func (a *app) jobs() map[string]service.Job {
	jobs := make(map[string]service.Job, len(triggerJobs))
	for name, build := range triggerJobs {
		jobs[name] = build(a.notifier)
	}
	return jobs
}

// schedule registers the shift-end prompts, the reminder sweep, the daily
// digest and the weekly report.
func (a *app) schedule(s *service.SchedulerService) error {
	sch := a.cfg.Schedule
	for shift, at := range map[model.WorkTime]string{model.ShiftA: sch.ShiftEndA, model.ShiftB: sch.ShiftEndB} {
		name := service.JobShiftEnd + "_" + shift.Code()
		if _, err := s.ScheduleDaily(name, at, func(ctx context.Context) error {
			return a.notifier.NotifyShiftEnd(ctx, shift)
		}); err != nil {
			return err
		}
	}
	if _, err := s.ScheduleInterval(service.JobReminders, sch.ReminderInterval, a.notifier.SendReminders); err != nil {
		return err
	}
	if _, err := s.ScheduleDaily(service.JobDigest, sch.DailyDigest, a.notifier.SendDailyDigest); err != nil {
		return err
	}
	if _, err := s.ScheduleWeekly(service.JobWeekly, time.Weekday(sch.WeeklyDay), sch.WeeklyTime, a.notifier.SendWeeklyReport); err != nil {
		return err
	}
	return nil
}

func (a *app) healthChecks() map[string]httpserver.HealthFunc {
	checks := map[string]httpserver.HealthFunc{
		"db": func(ctx context.Context) error {
			sqlDB, err := a.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if a.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			if err := a.redis.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			return nil
		}
	}
	return checks
}

// Close releases connections in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
