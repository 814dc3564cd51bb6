package readstore

import (
	"context"

	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Service, error)
	ListServices(ctx context.Context, db sqlc.DBTX, kind string) ([]sqlc.Service, error)
	ListServicesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Service, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Service, error)
	SearchVenues(ctx context.Context, db sqlc.DBTX, pattern string) ([]sqlc.Service, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service by id", err)
	}
	return toServiceView(row)
}

func (r *CatalogReadStore) FindAll(ctx context.Context, kind string) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db, kind)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return toServiceViews(rows)
}

func (r *CatalogReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServicesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services by owner", err)
	}
	return toServiceViews(rows)
}

func (r *CatalogReadStore) FindItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toServiceViews(rows)
}

func (r *CatalogReadStore) SearchVenues(ctx context.Context, pattern string) ([]*queries.ServiceView, error) {
	rows, err := r.queries.SearchVenues(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search venues", err)
	}
	return toServiceViews(rows)
}

func toServiceViews(rows []sqlc.Service) ([]*queries.ServiceView, error) {
	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		v, err := toServiceView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toServiceView(row sqlc.Service) (*queries.ServiceView, error) {
	price, err := pgconv.DecimalFromText(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid service price", err, infra.KindDBFailure)
	}
	return &queries.ServiceView{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Kind:          row.Kind,
		Title:         row.Title,
		Description:   pgconv.StringFromPgtype(row.Description),
		Image:         pgconv.StringFromPgtype(row.Image),
		Price:         price,
		Location:      pgconv.StringFromPgtype(row.Location),
		OccasionTypes: row.OccasionTypes,
		VenueID:       pgconv.UUIDPtrFromPgtype(row.VenueID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
