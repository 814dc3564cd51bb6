//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/readstore"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingQueries struct {
	mock.Mock
}

func (m *mockBookingQueries) rows(args mock.Arguments) ([]sqlc.Booking, error) {
	rows, _ := args.Get(0).([]sqlc.Booking)
	return rows, args.Error(1)
}

func (m *mockBookingQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error) {
	args := m.Called(ctx, db, id)
	row, _ := args.Get(0).(sqlc.Booking)
	return row, args.Error(1)
}

func (m *mockBookingQueries) ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, customerID))
}

func (m *mockBookingQueries) ListBookingsByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, businessID))
}

func (m *mockBookingQueries) ListBookingsByBusinessAndStatus(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID, status string) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, businessID, status))
}

func (m *mockBookingQueries) ListBookingHistoryByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, customerID))
}

func (m *mockBookingQueries) ListActiveBookingsForVenueDay(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID, eventDate string) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, venueID, eventDate))
}

func (m *mockBookingQueries) ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, limit))
}

func (m *mockBookingQueries) ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Booking, error) {
	return m.rows(m.Called(ctx, db, arg))
}

func (m *mockBookingQueries) ListServicesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Service, error) {
	args := m.Called(ctx, db, ids)
	services, _ := args.Get(0).([]sqlc.Service)
	return services, args.Error(1)
}

func TestBookingReadStore_Populate(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	venue := builder.NewVenueBuilder()
	decor := builder.NewItemBuilder("decor", venue.ID)
	menu := builder.NewItemBuilder("menu", venue.ID)
	removedID := uuid.New()

	first := builder.NewBookingBuilder().WithParties(customerID, venue.OwnerID).WithVenue(venue.ID)
	first.DecorIDs = []uuid.UUID{decor.ID, removedID}
	second := builder.NewBookingBuilder().WithParties(customerID, venue.OwnerID).WithVenue(venue.ID)
	second.DecorIDs = []uuid.UUID{decor.ID}
	second.MenuIDs = []uuid.UUID{menu.ID}

	t.Run("one catalog lookup expands every reference", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("ListBookingsByCustomer", ctx, mock.Anything, customerID).
			Return([]sqlc.Booking{first.BuildRow(), second.BuildRow()}, nil)
		q.On("ListServicesByIDs", ctx, mock.Anything, []uuid.UUID{venue.ID, decor.ID, removedID, menu.ID}).
			Return([]sqlc.Service{venue.BuildRow(), decor.BuildRow(), menu.BuildRow()}, nil).
			Once()

		views, err := readstore.NewBookingReadStore(q, nil).FindByCustomer(ctx, customerID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		require.NotNil(t, views[0].Venue)
		assert.Equal(t, "Grand Hall", views[0].Venue.Title)
		assert.True(t, venue.Price.Equal(views[0].Venue.Price))

		assert.Equal(t, []uuid.UUID{decor.ID, removedID}, views[0].DecorIDs)
		require.Len(t, views[0].Decor, 1)
		assert.Equal(t, decor.ID, views[0].Decor[0].ID)
		assert.Empty(t, views[0].Menu)

		require.Len(t, views[1].Menu, 1)
		assert.Equal(t, "menu", views[1].Menu[0].Kind)
		assert.NotNil(t, views[1].CateringIDs)
		q.AssertExpectations(t)
	})

	t.Run("no rows skip the catalog", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("ListBookingsByCustomer", ctx, mock.Anything, customerID).Return(nil, nil)

		views, err := readstore.NewBookingReadStore(q, nil).FindByCustomer(ctx, customerID)

		require.NoError(t, err)
		assert.Empty(t, views)
		q.AssertNotCalled(t, "ListServicesByIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("venue slots are never populated", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("ListActiveBookingsForVenueDay", ctx, mock.Anything, venue.ID, "2025-06-01").Return([]sqlc.Booking{first.BuildRow()}, nil)

		views, err := readstore.NewBookingReadStore(q, nil).FindActiveForVenueDay(ctx, venue.ID, "2025-06-01")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Nil(t, views[0].Venue)
		q.AssertNotCalled(t, "ListServicesByIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("catalog failure fails the read", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("ListBookingsByCustomer", ctx, mock.Anything, customerID).Return([]sqlc.Booking{second.BuildRow()}, nil)
		q.On("ListServicesByIDs", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := readstore.NewBookingReadStore(q, nil).FindByCustomer(ctx, customerID)

		require.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("corrupt service price", func(t *testing.T) {
		broken := venue.BuildRow()
		broken.Price = "n/a"
		q := new(mockBookingQueries)
		q.On("ListBookingsByCustomer", ctx, mock.Anything, customerID).Return([]sqlc.Booking{first.BuildRow()}, nil)
		q.On("ListServicesByIDs", ctx, mock.Anything, mock.Anything).Return([]sqlc.Service{broken}, nil)

		_, err := readstore.NewBookingReadStore(q, nil).FindByCustomer(ctx, customerID)

		require.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("corrupt booking total", func(t *testing.T) {
		row := first.BuildRow()
		row.TotalPrice = "lots"
		q := new(mockBookingQueries)
		q.On("ListBookingsByCustomer", ctx, mock.Anything, customerID).Return([]sqlc.Booking{row}, nil)

		_, err := readstore.NewBookingReadStore(q, nil).FindByCustomer(ctx, customerID)

		require.True(t, infra.IsKind(err, infra.KindDBFailure))
		q.AssertNotCalled(t, "ListServicesByIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("missing row", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("GetBookingByID", ctx, mock.Anything, id).Return(sqlc.Booking{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingReadStore(q, nil).FindByID(ctx, id)

		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("GetBookingByID", ctx, mock.Anything, id).Return(sqlc.Booking{}, errors.New("connection refused"))

		_, err := readstore.NewBookingReadStore(q, nil).FindByID(ctx, id)

		require.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
