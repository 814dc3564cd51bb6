package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const serviceColumns = `id, owner_id, kind, title, description, image, price::text, location,
       occasion_types, venue_id, created_at, updated_at`

func scanService(row pgx.Row) (Service, error) {
	var s Service
	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Kind,
		&s.Title,
		&s.Description,
		&s.Image,
		&s.Price,
		&s.Location,
		&s.OccasionTypes,
		&s.VenueID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const createService = `
INSERT INTO services (
    id, owner_id, kind, title, description, image, price, location, occasion_types, venue_id,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11, $11
)
RETURNING ` + serviceColumns

type CreateServiceParams struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Kind          string
	Title         string
	Description   pgtype.Text
	Image         pgtype.Text
	Price         string
	Location      pgtype.Text
	OccasionTypes []string
	VenueID       pgtype.UUID
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) (Service, error) {
	row := db.QueryRow(ctx, createService,
		arg.ID,
		arg.OwnerID,
		arg.Kind,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.Price,
		arg.Location,
		arg.OccasionTypes,
		arg.VenueID,
		arg.CreatedAt,
	)
	return scanService(row)
}

const getServiceByID = `
SELECT ` + serviceColumns + `
FROM services
WHERE id = $1
`

func (q *Queries) GetServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Service, error) {
	return scanService(db.QueryRow(ctx, getServiceByID, id))
}

const listServicesByIDs = `
SELECT ` + serviceColumns + `
FROM services
WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListServicesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listServicesByIDs, ids)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

const listServicesByOwner = `
SELECT ` + serviceColumns + `
FROM services
WHERE owner_id = $1
ORDER BY kind, created_at DESC
`

func (q *Queries) ListServicesByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listServicesByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

const listServices = `
SELECT ` + serviceColumns + `
FROM services
WHERE ($1::text = '' OR kind = $1::text)
ORDER BY created_at DESC, id
`

// ListServices returns every service, or only those of kind when it is non-empty.
func (q *Queries) ListServices(ctx context.Context, db DBTX, kind string) ([]Service, error) {
	rows, err := db.Query(ctx, listServices, kind)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

const listItemsByOwner = `
SELECT ` + serviceColumns + `
FROM services
WHERE owner_id = $1
  AND kind IN ('decor', 'catering', 'menu')
ORDER BY kind, title
`

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listItemsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

const searchVenues = `
SELECT ` + serviceColumns + `
FROM services
WHERE kind = 'venue'
  AND (
        title ILIKE $1
     OR description ILIKE $1
     OR kind ILIKE $1
     OR EXISTS (SELECT 1 FROM unnest(occasion_types) AS o WHERE o ILIKE $1)
  )
ORDER BY title
`

// SearchVenues expects pattern to be a ready ILIKE pattern with wildcards escaped.
func (q *Queries) SearchVenues(ctx context.Context, db DBTX, pattern string) ([]Service, error) {
	rows, err := db.Query(ctx, searchVenues, pattern)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

const updateService = `
UPDATE services
SET title          = $3,
    description    = $4,
    image          = $5,
    price          = $6::numeric,
    location       = $7,
    occasion_types = $8,
    venue_id       = $9,
    updated_at     = $10
WHERE id = $1
  AND owner_id = $2
RETURNING ` + serviceColumns

type UpdateServiceParams struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   pgtype.Text
	Image         pgtype.Text
	Price         string
	Location      pgtype.Text
	OccasionTypes []string
	VenueID       pgtype.UUID
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg UpdateServiceParams) (Service, error) {
	row := db.QueryRow(ctx, updateService,
		arg.ID,
		arg.OwnerID,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.Price,
		arg.Location,
		arg.OccasionTypes,
		arg.VenueID,
		arg.UpdatedAt,
	)
	return scanService(row)
}

const deleteService = `
DELETE FROM services
WHERE id = $1
  AND owner_id = $2
`

func (q *Queries) DeleteService(ctx context.Context, db DBTX, id, ownerID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteService, id, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
