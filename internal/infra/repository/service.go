package repository

import (
	"context"

	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/repository/converter"
	"bookmyvenue/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (sqlc.Service, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (sqlc.Service, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id, ownerID uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
}

func NewServiceRepository(queries ServiceWriteQueries) *ServiceRepository {
	return &ServiceRepository{queries: queries}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error {
	if _, err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

// Update matches on id and owner, so a foreign service reads as not found.
func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error {
	if _, err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id, ownerID uuid.UUID) error {
	n, err := r.queries.DeleteService(ctx, tx, id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
