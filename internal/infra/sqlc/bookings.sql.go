package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, customer_id, business_id, venue_id, decor_ids, catering_ids, menu_ids,
       event_date, start_time, end_time, status, payment_status, total_price::text,
       created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.BusinessID,
		&b.VenueID,
		&b.DecorIds,
		&b.CateringIds,
		&b.MenuIds,
		&b.EventDate,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.PaymentStatus,
		&b.TotalPrice,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

const acquireSlotLock = `
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

// AcquireSlotLock blocks until the transaction owns the advisory lock for key.
// The lock is released on commit or rollback.
func (q *Queries) AcquireSlotLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireSlotLock, key)
	return err
}

const createBooking = `
INSERT INTO bookings (
    id, customer_id, business_id, venue_id, decor_ids, catering_ids, menu_ids,
    event_date, start_time, end_time, status, payment_status, total_price,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::numeric, $14, $14
)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	BusinessID    uuid.UUID
	VenueID       uuid.UUID
	DecorIds      []uuid.UUID
	CateringIds   []uuid.UUID
	MenuIds       []uuid.UUID
	EventDate     string
	StartTime     string
	EndTime       string
	Status        string
	PaymentStatus string
	TotalPrice    string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Booking, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.CustomerID,
		arg.BusinessID,
		arg.VenueID,
		arg.DecorIds,
		arg.CateringIds,
		arg.MenuIds,
		arg.EventDate,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.PaymentStatus,
		arg.TotalPrice,
		arg.CreatedAt,
	)
	return scanBooking(row)
}

const getBookingByID = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingByIDForUpdate = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const updateBookingState = `
UPDATE bookings
SET status         = $2,
    payment_status = $3,
    decor_ids      = $4,
    catering_ids   = $5,
    menu_ids       = $6,
    total_price    = $7::numeric,
    updated_at     = $8
WHERE id = $1
RETURNING id
`

type UpdateBookingStateParams struct {
	ID            uuid.UUID
	Status        string
	PaymentStatus string
	DecorIds      []uuid.UUID
	CateringIds   []uuid.UUID
	MenuIds       []uuid.UUID
	TotalPrice    string
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateBookingState(ctx context.Context, db DBTX, arg UpdateBookingStateParams) error {
	var id uuid.UUID
	return db.QueryRow(ctx, updateBookingState,
		arg.ID,
		arg.Status,
		arg.PaymentStatus,
		arg.DecorIds,
		arg.CateringIds,
		arg.MenuIds,
		arg.TotalPrice,
		arg.UpdatedAt,
	).Scan(&id)
}

const deleteBooking = `
DELETE FROM bookings
WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listActiveBookingsForVenueDay = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE venue_id = $1
  AND event_date = $2
  AND status <> 'Cancelled'
ORDER BY start_time
`

func (q *Queries) ListActiveBookingsForVenueDay(ctx context.Context, db DBTX, venueID uuid.UUID, eventDate string) ([]Booking, error) {
	rows, err := db.Query(ctx, listActiveBookingsForVenueDay, venueID, eventDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingsByCustomer = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE customer_id = $1
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListBookingsByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingsByBusiness = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE business_id = $1
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListBookingsByBusiness(ctx context.Context, db DBTX, businessID uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByBusiness, businessID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingsByBusinessAndStatus = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE business_id = $1
  AND status = $2
ORDER BY event_date, start_time
`

func (q *Queries) ListBookingsByBusinessAndStatus(ctx context.Context, db DBTX, businessID uuid.UUID, status string) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByBusinessAndStatus, businessID, status)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingHistoryByCustomer = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE customer_id = $1
  AND status IN ('Cancelled', 'Confirmed', 'Completed')
ORDER BY event_date, start_time, id
`

func (q *Queries) ListBookingHistoryByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingHistoryByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingsFirstPage = `
SELECT ` + bookingColumns + `
FROM bookings
ORDER BY created_at, id
LIMIT $1
`

func (q *Queries) ListBookingsFirstPage(ctx context.Context, db DBTX, limit int32) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsFirstPage, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listBookingsKeyset = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE (created_at, id) > ($1, $2)
ORDER BY created_at, id
LIMIT $3
`

type ListBookingsKeysetParams struct {
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListBookingsKeyset(ctx context.Context, db DBTX, arg ListBookingsKeysetParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsKeyset, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}
