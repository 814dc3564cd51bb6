package repository

import (
	"context"
	"time"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32, now, staleBefore pgtype.Timestamptz) ([]sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID, now pgtype.Timestamptz) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID, lastError pgtype.Text, now pgtype.Timestamptz) error
}

// NotificationJob is a claimed outbox entry ready to publish.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

// NewNotificationRepository binds db for the relay's own calls; CreateJob always runs on the caller's tx.
func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue also reclaims jobs whose claim is older than staleBefore, which covers a relay
// that died or lost the database between publishing and recording the outcome.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int, now, staleBefore time.Time) ([]NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, int32(limit), pgconv.TimeToPgtype(now), pgconv.TimeToPgtype(staleBefore)) // #nosec G115 -- batch size is small and config-bound
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id, pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastError string, now time.Time) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastError),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
	if err := r.queries.RescheduleNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, now time.Time) error {
	if err := r.queries.MarkNotificationJobFailed(ctx, r.db, id, pgconv.StringToPgtype(lastError), pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
