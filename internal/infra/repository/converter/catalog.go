package converter

import (
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/pgconv"
)

var ErrCorruptServiceRow = errs.New("stored service row is not valid")

func ServiceToCreateParams(s *catalog.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		ID:            s.ID(),
		OwnerID:       s.OwnerID(),
		Kind:          s.Kind().String(),
		Title:         s.Title(),
		Description:   pgconv.StringToPgtype(s.Description()),
		Image:         pgconv.StringToPgtype(s.Image()),
		Price:         pgconv.DecimalToText(s.Price()),
		Location:      pgconv.StringToPgtype(s.Location()),
		OccasionTypes: pgconv.NonNilStrings(s.OccasionTypes()),
		VenueID:       pgconv.UUIDPtrToPgtype(s.VenueID()),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ServiceToUpdateParams(s *catalog.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:            s.ID(),
		OwnerID:       s.OwnerID(),
		Title:         s.Title(),
		Description:   pgconv.StringToPgtype(s.Description()),
		Image:         pgconv.StringToPgtype(s.Image()),
		Price:         pgconv.DecimalToText(s.Price()),
		Location:      pgconv.StringToPgtype(s.Location()),
		OccasionTypes: pgconv.NonNilStrings(s.OccasionTypes()),
		VenueID:       pgconv.UUIDPtrToPgtype(s.VenueID()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func ServiceFromRow(row sqlc.Service) (*catalog.Service, error) {
	kind, err := catalog.NewKind(row.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptServiceRow)
	}
	price, err := pgconv.DecimalFromText(row.Price)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptServiceRow)
	}

	attrs := catalog.Attributes{
		Title:         row.Title,
		Description:   pgconv.StringFromPgtype(row.Description),
		Image:         pgconv.StringFromPgtype(row.Image),
		Location:      pgconv.StringFromPgtype(row.Location),
		Price:         price,
		OccasionTypes: row.OccasionTypes,
		VenueID:       pgconv.UUIDPtrFromPgtype(row.VenueID),
	}
	return catalog.ReconstructService(
		row.ID,
		row.OwnerID,
		kind,
		attrs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ServicesFromRows(rows []sqlc.Service) ([]*catalog.Service, error) {
	out := make([]*catalog.Service, 0, len(rows))
	for _, row := range rows {
		s, err := ServiceFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
