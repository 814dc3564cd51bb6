package readstore

import (
	"context"
	"time"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Booking, error)
	ListBookingsByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) ([]sqlc.Booking, error)
	ListBookingsByBusinessAndStatus(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID, status string) ([]sqlc.Booking, error)
	ListBookingHistoryByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Booking, error)
	ListActiveBookingsForVenueDay(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID, eventDate string) ([]sqlc.Booking, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Booking, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Booking, error)
	ListServicesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Service, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	views, err := r.populate(ctx, []sqlc.Booking{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *BookingReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}
	return r.populate(ctx, rows)
}

func (r *BookingReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBusiness(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by business", err)
	}
	return r.populate(ctx, rows)
}

func (r *BookingReadStore) FindByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBusinessAndStatus(ctx, r.db, businessID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by business and status", err)
	}
	return r.populate(ctx, rows)
}

func (r *BookingReadStore) FindHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingHistoryByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}
	return r.populate(ctx, rows)
}

// FindActiveForVenueDay skips population; callers only need the slots.
func (r *BookingReadStore) FindActiveForVenueDay(ctx context.Context, venueID uuid.UUID, eventDate string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListActiveBookingsForVenueDay(ctx, r.db, venueID, eventDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for venue day", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, limit int) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, int32(limit)) // #nosec G115 -- limit is capped by queries.ValidateLimit
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return r.populate(ctx, rows)
}

func (r *BookingReadStore) FindPageAfter(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(createdAt),
		ID:        id,
		Limit:     int32(limit), // #nosec G115 -- limit is capped by queries.ValidateLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return r.populate(ctx, rows)
}

// populate expands venue and item references into summaries with a single catalog lookup.
// References to services that no longer exist are left out of the summaries but kept in the id lists.
func (r *BookingReadStore) populate(ctx context.Context, rows []sqlc.Booking) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0, len(rows))
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	collectID := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)

		collectID(row.VenueID)
		for _, group := range [][]uuid.UUID{row.DecorIds, row.CateringIds, row.MenuIds} {
			for _, id := range group {
				collectID(id)
			}
		}
	}
	if len(ids) == 0 {
		return views, nil
	}

	services, err := r.queries.ListServicesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked services", err)
	}
	summaries := make(map[uuid.UUID]queries.ServiceSummary, len(services))
	for _, s := range services {
		price, err := pgconv.DecimalFromText(s.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid service price", err, infra.KindDBFailure)
		}
		summaries[s.ID] = queries.ServiceSummary{ID: s.ID, Kind: s.Kind, Title: s.Title, Price: price}
	}

	for _, v := range views {
		if venue, ok := summaries[v.VenueID]; ok {
			v.Venue = &venue
		}
		v.Decor = pick(summaries, v.DecorIDs)
		v.Catering = pick(summaries, v.CateringIDs)
		v.Menu = pick(summaries, v.MenuIDs)
	}
	return views, nil
}

func pick(summaries map[uuid.UUID]queries.ServiceSummary, ids []uuid.UUID) []queries.ServiceSummary {
	out := make([]queries.ServiceSummary, 0, len(ids))
	for _, id := range ids {
		if s, ok := summaries[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func toBookingView(row sqlc.Booking) (*queries.BookingView, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total", err, infra.KindDBFailure)
	}
	return &queries.BookingView{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		BusinessID:    row.BusinessID,
		VenueID:       row.VenueID,
		DecorIDs:      pgconv.NonNilUUIDs(row.DecorIds),
		CateringIDs:   pgconv.NonNilUUIDs(row.CateringIds),
		MenuIDs:       pgconv.NonNilUUIDs(row.MenuIds),
		Decor:         []queries.ServiceSummary{},
		Catering:      []queries.ServiceSummary{},
		Menu:          []queries.ServiceSummary{},
		EventDate:     row.EventDate,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Status:        row.Status,
		PaymentStatus: row.PaymentStatus,
		TotalPrice:    total,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
