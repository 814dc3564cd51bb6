package outbox

import (
	"context"
	"log/slog"
	"time"

	"bookmyvenue/internal/infra/repository"
	"bookmyvenue/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	baseBackoff  = 5 * time.Second
	maxBackoff   = 5 * time.Minute
	defaultLease = time.Minute

	releasedError = "relay stopped before publishing"
)

type JobStore interface {
	ClaimDue(ctx context.Context, limit int, now, staleBefore time.Time) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastError string, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, now time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	// LeaseTimeout is how long a claimed job may stay in processing before another batch reclaims it.
	LeaseTimeout time.Duration
}

// Relay moves committed notification jobs to the message broker.
// A job is published at least once; consumers deduplicate on the message id.
// A job whose outcome could not be recorded is published again once its lease expires.
type Relay struct {
	store     JobStore
	publisher Publisher
	clock     clock.Clock
	cfg       Config
}

func NewRelay(store JobStore, publisher Publisher, clk clock.Clock, cfg Config) *Relay {
	return &Relay{store: store, publisher: publisher, clock: clk, cfg: cfg}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil {
				slog.Error("outbox batch failed", "error", err.Error())
			}
		}
	}
}

// ProcessBatch claims one batch of due jobs and returns how many were published.
// Outcomes are recorded even when ctx is cancelled mid-batch; jobs not yet published are released.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	now := r.clock.Now()
	jobs, err := r.store.ClaimDue(ctx, r.cfg.BatchSize, now, now.Add(-r.lease()))
	if err != nil {
		return 0, err
	}

	record := context.WithoutCancel(ctx)
	sent := 0
	for i, job := range jobs {
		if ctx.Err() != nil {
			r.release(record, jobs[i:])
			break
		}

		pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
		now := r.clock.Now()
		if pubErr == nil {
			if err := r.store.MarkSent(record, job.ID, now); err != nil {
				slog.Error("failed to mark job sent, it will be republished after the lease", "job_id", job.ID, "error", err.Error())
				continue
			}
			sent++
			continue
		}

		if job.Attempts >= r.cfg.MaxAttempts {
			slog.Error("notification job exhausted retries", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", pubErr.Error())
			if err := r.store.MarkFailed(record, job.ID, pubErr.Error(), now); err != nil {
				slog.Error("failed to mark job failed", "job_id", job.ID, "error", err.Error())
			}
			continue
		}

		runAt := now.Add(Backoff(job.Attempts))
		slog.Warn("notification job rescheduled", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "run_at", runAt)
		if err := r.store.Reschedule(record, job.ID, runAt, pubErr.Error(), now); err != nil {
			slog.Error("failed to reschedule job", "job_id", job.ID, "error", err.Error())
		}
	}
	return sent, nil
}

// release hands unpublished jobs back as immediately due.
func (r *Relay) release(ctx context.Context, jobs []repository.NotificationJob) {
	now := r.clock.Now()
	for _, job := range jobs {
		if err := r.store.Reschedule(ctx, job.ID, now, releasedError, now); err != nil {
			slog.Error("failed to release job", "job_id", job.ID, "error", err.Error())
		}
	}
}

func (r *Relay) lease() time.Duration {
	if r.cfg.LeaseTimeout <= 0 {
		return defaultLease
	}
	return r.cfg.LeaseTimeout
}

// Backoff doubles from five seconds per attempt and caps at five minutes.
func Backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := baseBackoff
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
