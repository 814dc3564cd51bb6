//go:build unit || e2e

package builder

import (
	"time"

	"bookmyvenue/internal/domain/catalog"
	reqdto "bookmyvenue/internal/handler/dto/request"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Kind          string
	Title         string
	Description   string
	Location      string
	Price         decimal.Decimal
	OccasionTypes []string
	VenueID       *uuid.UUID
	Now           time.Time
}

// NewVenueBuilder returns a valid venue; the item builders below anchor to a venue id.
func NewVenueBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Kind:          "venue",
		Title:         "Grand Hall",
		Description:   "Banquet hall for 300 guests",
		Location:      "Pune",
		Price:         decimal.NewFromInt(50000),
		OccasionTypes: []string{"wedding", "reception"},
		Now:           time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func NewItemBuilder(kind string, venueID uuid.UUID) *ServiceBuilder {
	return &ServiceBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Kind:        kind,
		Title:       "Test " + kind,
		Description: kind + " package",
		Price:       decimal.NewFromInt(5000),
		VenueID:     &venueID,
		Now:         time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithOwner(ownerID uuid.UUID) *ServiceBuilder {
	s.OwnerID = ownerID
	return s
}

func (s *ServiceBuilder) WithPrice(p int64) *ServiceBuilder {
	s.Price = decimal.NewFromInt(p)
	return s
}

func (s *ServiceBuilder) Attributes() catalog.Attributes {
	return catalog.Attributes{
		Title:         s.Title,
		Description:   s.Description,
		Location:      s.Location,
		Price:         s.Price,
		OccasionTypes: s.OccasionTypes,
		VenueID:       s.VenueID,
	}
}

func (s *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(s.OwnerID, catalog.Kind(s.Kind), s.Attributes(), s.Now)
}

// BuildStored keeps the builder's id, as if the service had been loaded from the store.
func (s *ServiceBuilder) BuildStored() *catalog.Service {
	return catalog.ReconstructService(s.ID, s.OwnerID, catalog.Kind(s.Kind), s.Attributes(), s.Now, s.Now)
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Kind:          s.Kind,
		Title:         s.Title,
		Description:   s.Description,
		Price:         s.Price,
		Location:      s.Location,
		OccasionTypes: s.OccasionTypes,
		VenueID:       s.VenueID,
		CreatedAt:     s.Now,
		UpdatedAt:     s.Now,
	}
}

func (s *ServiceBuilder) BuildRow() sqlc.Service {
	return sqlc.Service{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Kind:          s.Kind,
		Title:         s.Title,
		Description:   pgconv.StringToPgtype(s.Description),
		Price:         pgconv.DecimalToText(s.Price),
		Location:      pgconv.StringToPgtype(s.Location),
		OccasionTypes: s.OccasionTypes,
		VenueID:       pgconv.UUIDPtrToPgtype(s.VenueID),
		CreatedAt:     pgconv.TimeToPgtype(s.Now),
		UpdatedAt:     pgconv.TimeToPgtype(s.Now),
	}
}

func (s *ServiceBuilder) BuildDTO() reqdto.CreateServiceRequest {
	price := s.Price
	return reqdto.CreateServiceRequest{
		Type: s.Kind,
		ServiceAttributes: reqdto.ServiceAttributes{
			Title:         s.Title,
			Description:   s.Description,
			Location:      s.Location,
			Price:         &price,
			OccasionTypes: s.OccasionTypes,
			VenueID:       s.VenueID,
		},
	}
}
