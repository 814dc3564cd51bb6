package shared

import (
	"context"
	"time"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one Read Committed transaction; fn's error rolls everything back. Never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Services() ServiceRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	// LockSlot serializes admissions for one venue and day until the transaction ends.
	LockSlot(ctx context.Context, venueID uuid.UUID, date booking.EventDate) error
	DB() sqlc.DBTX
}

type CommandReads interface {
	// BookingForUpdate row-locks the booking when called inside a transaction.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveBookingsForVenueDay(ctx context.Context, venueID uuid.UUID, date booking.EventDate) ([]*booking.Booking, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Service, error)
	UserCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	// UserForUpdate row-locks the user when called inside a transaction.
	UserForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error
	Update(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error
	Delete(ctx context.Context, tx sqlc.DBTX, id, ownerID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
