package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const notificationJobColumns = `id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at`

func scanNotificationJob(row pgx.Row) (NotificationJob, error) {
	var j NotificationJob
	err := row.Scan(
		&j.ID,
		&j.Kind,
		&j.Topic,
		&j.Payload,
		&j.RunAt,
		&j.Attempts,
		&j.Status,
		&j.LastError,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3::jsonb, $4)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, string(arg.Payload), arg.RunAt)
	return err
}

const claimDueNotificationJobs = `
UPDATE notification_jobs
SET status     = 'processing',
    attempts   = attempts + 1,
    updated_at = $2
WHERE id IN (
    SELECT id
    FROM notification_jobs
    WHERE (status = 'pending' AND run_at <= $2)
       OR (status = 'processing' AND updated_at < $3)
    ORDER BY run_at
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING ` + notificationJobColumns

// ClaimDueNotificationJobs moves up to limit due jobs to processing so concurrent relays never share one.
// Jobs left in processing since before staleBefore count as due again.
func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, limit int32, now, staleBefore pgtype.Timestamptz) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, limit, now, staleBefore)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNotificationJob)
}

const markNotificationJobSent = `
UPDATE notification_jobs
SET status = 'sent', last_error = NULL, updated_at = $2
WHERE id = $1
`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id, now)
	return err
}

const rescheduleNotificationJob = `
UPDATE notification_jobs
SET status = 'pending', run_at = $2, last_error = $3, updated_at = $4
WHERE id = $1
`

type RescheduleNotificationJobParams struct {
	ID        uuid.UUID
	RunAt     pgtype.Timestamptz
	LastError pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) RescheduleNotificationJob(ctx context.Context, db DBTX, arg RescheduleNotificationJobParams) error {
	_, err := db.Exec(ctx, rescheduleNotificationJob, arg.ID, arg.RunAt, arg.LastError, arg.UpdatedAt)
	return err
}

const markNotificationJobFailed = `
UPDATE notification_jobs
SET status = 'failed', last_error = $2, updated_at = $3
WHERE id = $1
`

func (q *Queries) MarkNotificationJobFailed(ctx context.Context, db DBTX, id uuid.UUID, lastError pgtype.Text, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markNotificationJobFailed, id, lastError, now)
	return err
}
