package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"priceflow/internal/pkg/config"
	"priceflow/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(startScheduler),
)

// runAllTimeout bounds one periodic pass across every shop.
const runAllTimeout = 5 * time.Minute

func startScheduler(lc fx.Lifecycle, cfg config.Config, runner commands.ScheduleRunner) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Scheduler.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runAllTimeout)
		defer cancel()

		if err := runner.RunAllDue(ctx); err != nil {
			slog.Error("periodic schedule run failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("scheduler started", "cron", cfg.Scheduler.Cron)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
