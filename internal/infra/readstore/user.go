package readstore

import (
	"context"

	"github.com/google/uuid"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
	"bookmyvenue/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		views[i] = toUserView(row)
	}
	return views, nil
}

// password hashes never leave this package
func toUserView(row sqlc.User) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		PhoneNumber: pgconv.StringFromPgtype(row.PhoneNumber),
		Role:        row.Role,
		Image:       pgconv.StringFromPgtype(row.Image),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
