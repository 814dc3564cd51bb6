//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/repository"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserQueries struct{ mock.Mock }

func (m *mockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.User, error) {
	args := m.Called(ctx, db, arg)
	return sqlc.User{}, args.Error(0)
}

func (m *mockUserQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.User, error) {
	args := m.Called(ctx, db, arg)
	return sqlc.User{}, args.Error(0)
}

type mockServiceQueries struct{ mock.Mock }

func (m *mockServiceQueries) CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (sqlc.Service, error) {
	args := m.Called(ctx, db, arg)
	return sqlc.Service{}, args.Error(0)
}

func (m *mockServiceQueries) UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (sqlc.Service, error) {
	args := m.Called(ctx, db, arg)
	return sqlc.Service{}, args.Error(0)
}

func (m *mockServiceQueries) DeleteService(ctx context.Context, db sqlc.DBTX, id, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingQueries struct{ mock.Mock }

func (m *mockBookingQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Booking, error) {
	args := m.Called(ctx, db, arg)
	return sqlc.Booking{}, args.Error(0)
}

func (m *mockBookingQueries) UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockBookingQueries) DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().WithEmail("dup@example.com").BuildDomain()
	require.NoError(t, err)

	t.Run("create passes the user through", func(t *testing.T) {
		q := new(mockUserQueries)
		q.On("CreateUser", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.ID == u.ID() && p.Email == "dup@example.com"
		})).Return(nil)

		require.NoError(t, repository.NewUserRepository(q).Create(ctx, nil, u))
		q.AssertExpectations(t)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		q := new(mockUserQueries)
		q.On("CreateUser", ctx, mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		err := repository.NewUserRepository(q).Create(ctx, nil, u)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("profile update failure", func(t *testing.T) {
		q := new(mockUserQueries)
		q.On("UpdateUserProfile", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserProfileParams) bool {
			return p.ID == u.ID()
		})).Return(errors.New("connection reset"))

		err := repository.NewUserRepository(q).UpdateProfile(ctx, nil, u)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestServiceRepository(t *testing.T) {
	ctx := context.Background()
	venue := builder.NewVenueBuilder()

	t.Run("delete of nothing is not found", func(t *testing.T) {
		q := new(mockServiceQueries)
		q.On("DeleteService", ctx, mock.Anything, venue.ID, venue.OwnerID).Return(int64(0), nil)

		err := repository.NewServiceRepository(q).Delete(ctx, nil, venue.ID, venue.OwnerID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete of a referenced venue", func(t *testing.T) {
		q := new(mockServiceQueries)
		q.On("DeleteService", ctx, mock.Anything, venue.ID, venue.OwnerID).Return(int64(0), &pgconn.PgError{Code: "23503"})

		err := repository.NewServiceRepository(q).Delete(ctx, nil, venue.ID, venue.OwnerID)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("delete", func(t *testing.T) {
		q := new(mockServiceQueries)
		q.On("DeleteService", ctx, mock.Anything, venue.ID, venue.OwnerID).Return(int64(1), nil)

		require.NoError(t, repository.NewServiceRepository(q).Delete(ctx, nil, venue.ID, venue.OwnerID))
	})

	t.Run("update of a foreign service", func(t *testing.T) {
		q := new(mockServiceQueries)
		q.On("UpdateService", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateServiceParams) bool {
			return p.ID == venue.ID && p.OwnerID == venue.OwnerID
		})).Return(pgx.ErrNoRows)

		err := repository.NewServiceRepository(q).Update(ctx, nil, venue.BuildStored())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().BuildDomain()

	t.Run("save failure", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("UpdateBookingState", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateBookingStateParams) bool {
			return p.ID == b.ID() && p.Status == b.Status().String()
		})).Return(errors.New("connection reset"))

		err := repository.NewBookingRepository(q).Save(ctx, nil, b)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("create", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("CreateBooking", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
			return p.ID == b.ID() && p.VenueID == b.VenueID()
		})).Return(nil)

		require.NoError(t, repository.NewBookingRepository(q).Create(ctx, nil, b))
		q.AssertExpectations(t)
	})

	t.Run("delete of nothing is not found", func(t *testing.T) {
		q := new(mockBookingQueries)
		q.On("DeleteBooking", ctx, mock.Anything, b.ID()).Return(int64(0), nil)

		err := repository.NewBookingRepository(q).Delete(ctx, nil, b.ID())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
