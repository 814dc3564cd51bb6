package repository

import (
	"context"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/repository/converter"
	"bookmyvenue/internal/infra/sqlc"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.User, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.UpdateUserProfile(ctx, tx, converter.UserToUpdateProfileParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}
