package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"daily-report-bot/internal/config"
	"daily-report-bot/internal/httpserver"
	"daily-report-bot/internal/i18n"
	"daily-report-bot/internal/lib/sl"
	"daily-report-bot/internal/repository"
	"daily-report-bot/internal/service"
)

const (
	jobTimeout      = 5 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Poll Telegram updates and run the scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root := &cobra.Command{
		Use:   "reportbot",
		Short: "Telegram bot collecting daily employee reports",
		Long: `reportbot asks employees for a daily report after their shift, reminds
the ones who forgot and sends admins a daily digest and an AI-written weekly report.

Settings are read from the environment and an optional .env file.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}

	root.AddCommand(serve, newMigrateCmd(), newTriggerCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer.Close()

			db, err := repository.NewDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			log.Info("database schema is up to date")
			return nil
		},
	}
}

func newTriggerCmd() *cobra.Command {
	names := jobNames()
	return &cobra.Command{
		Use:       "trigger <" + strings.Join(names, "|") + ">",
		Short:     "Run one scheduled job now and exit",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer.Close()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			scheduler := service.NewSchedulerService(cfg.Location(), log, jobTimeout)
			err = scheduler.RunNow(ctx, args[0], a.jobs()[args[0]])
			if errors.Is(err, service.ErrNoReports) {
				log.Info("nothing to send", slog.String("job", args[0]))
				return nil
			}
			return err
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, log, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	scheduler := service.NewSchedulerService(cfg.Location(), log, jobTimeout)
	if err := a.schedule(scheduler); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	httpDone := make(chan struct{})
	if cfg.HTTPAddr != "" {
		go func() {
			defer close(httpDone)
			if err := httpserver.Run(ctx, log, cfg.HTTPAddr, httpserver.NewRouter(log, a.healthChecks())); err != nil {
				log.Error("http server", sl.Err(err))
			}
		}()
	} else {
		close(httpDone)
	}

	log.Info("daily report bot started", slog.Int("jobs", scheduler.Entries()), slog.String("timezone", cfg.Timezone))
	a.notifier.Broadcast(ctx, i18n.BotStarted)

	err = a.bot.Start(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.notifier.Broadcast(stopCtx, i18n.BotStopped)
	<-httpDone

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot stopped: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}

// setup loads the configuration and builds the logger.
func setup() (config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("config: %w", err)
	}
	log, closer, err := sl.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return cfg, nil, nil, err
	}
	slog.SetDefault(log)
	return cfg, log, closer, nil
}

func jobNames() []string {
	names := make([]string, 0, len(triggerJobs))
	for name := range triggerJobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
