package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidEventDate    = errs.New("invalid event date")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*BookingView, error)
	ListPendingByBusiness(ctx context.Context, businessID uuid.UUID) ([]*BookingView, error)
	ListHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	ListActiveForVenue(ctx context.Context, venueID uuid.UUID, eventDate string) ([]*SlotView, error)
	ListAll(ctx context.Context, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*BookingView, error)
	FindByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*BookingView, error)
	FindHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	FindActiveForVenueDay(ctx context.Context, venueID uuid.UUID, eventDate string) ([]*BookingView, error)
	FindFirstPage(ctx context.Context, limit int) ([]*BookingView, error)
	FindPageAfter(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// GetByID shows a booking to its customer, its business and admins only.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, shared.StoreErr(err)
	}

	if actorRole != user.RoleAdmin && view.CustomerID != actorID && view.BusinessID != actorID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	return list(q.readStore.FindByCustomer(ctx, customerID))
}

func (q *bookingQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*BookingView, error) {
	return list(q.readStore.FindByBusiness(ctx, businessID))
}

func (q *bookingQueriesImpl) ListPendingByBusiness(ctx context.Context, businessID uuid.UUID) ([]*BookingView, error) {
	return list(q.readStore.FindByBusinessAndStatus(ctx, businessID, booking.StatusPending.String()))
}

// ListHistoryByCustomer returns settled bookings in event order.
func (q *bookingQueriesImpl) ListHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	return list(q.readStore.FindHistoryByCustomer(ctx, customerID))
}

func (q *bookingQueriesImpl) ListActiveForVenue(ctx context.Context, venueID uuid.UUID, eventDate string) ([]*SlotView, error) {
	date, err := booking.NewEventDate(eventDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEventDate)
	}

	views, err := q.readStore.FindActiveForVenueDay(ctx, venueID, date.String())
	if err != nil {
		return nil, shared.StoreErr(err)
	}

	slots := make([]*SlotView, len(views))
	for i, v := range views {
		slots[i] = &SlotView{
			EventDate: v.EventDate,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			Status:    v.Status,
		}
	}
	return slots, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		items []*BookingView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindFirstPage(ctx, limit)
	} else {
		createdAt, id, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindPageAfter(ctx, createdAt, id, limit)
	}
	if err != nil {
		return nil, nil, shared.StoreErr(err)
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

// list passes read-store results through with store failures marked.
func list[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return items, nil
}
