package bootstrap

import (
	"context"
	"log/slog"

	"bookmyvenue/internal/infra/mq"
	"bookmyvenue/internal/infra/outbox"
	"bookmyvenue/internal/infra/repository"
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/config"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartOutboxRelay,
	),
)

// StartOutboxRelay runs the relay for the lifetime of the app. Without AMQP_URL
// jobs stay pending in notification_jobs.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, jobs *repository.NotificationRepository, clk clock.Clock, logger *slog.Logger) {
	if !cfg.AMQP.Enabled() {
		logger.Info("AMQP disabled, outbox relay is off")
		return
	}

	var (
		publisher *mq.Publisher
		cancel    context.CancelFunc
		done      = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
			if err != nil {
				return err
			}
			publisher = p

			relay := outbox.NewRelay(jobs, publisher, clk, outbox.Config{
				PollInterval: cfg.AMQP.PollInterval,
				BatchSize:    cfg.AMQP.BatchSize,
				MaxAttempts:  cfg.AMQP.MaxAttempts,
				LeaseTimeout: cfg.AMQP.LeaseTimeout,
			})

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())
			go func() {
				defer close(done)
				relay.Run(runCtx)
			}()
			logger.Info("Outbox relay started", "exchange", cfg.AMQP.Exchange)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel == nil {
				return nil
			}
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return publisher.Close()
		},
	})
}
