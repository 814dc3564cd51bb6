package uow

import (
	"context"
	"errors"
	"log/slog"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/repository"
	"bookmyvenue/internal/infra/repository/converter"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in one Read Committed transaction. Failures are reported as they are; nothing is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("begin transaction", err, infra.KindDBFailure)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}()

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit transaction", err, infra.KindDBFailure)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	serviceRepo      shared.ServiceRepository
	userRepo         shared.UserRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.uow.q)
	}
	return t.serviceRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.uow.q,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// LockSlot takes a transaction-scoped advisory lock for one venue and day.
func (t *pgTx) LockSlot(ctx context.Context, venueID uuid.UUID, date booking.EventDate) error {
	if err := t.uow.q.AcquireSlotLock(ctx, t.dbtx, SlotLockKey(venueID, date)); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err, infra.KindDBFailure)
	}
	return nil
}

func SlotLockKey(venueID uuid.UUID, date booking.EventDate) string {
	return venueID.String() + "|" + date.String()
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.q.GetBookingByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *commandReads) ActiveBookingsForVenueDay(ctx context.Context, venueID uuid.UUID, date booking.EventDate) ([]*booking.Booking, error) {
	rows, err := r.q.ListActiveBookingsForVenueDay(ctx, r.dbtx, venueID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for venue day", err)
	}
	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bookings", err, infra.KindDBFailure)
	}
	return bookings, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	row, err := r.q.GetServiceByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	s, err := converter.ServiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert service", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *commandReads) ServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}
	rows, err := r.q.ListServicesByIDs(ctx, r.dbtx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	services, err := converter.ServicesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert services", err, infra.KindDBFailure)
	}
	return services, nil
}

func (r *commandReads) UserCredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	row, err := r.q.GetUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user by email", err)
	}
	return &shared.UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *commandReads) UserForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.q.GetUserByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
