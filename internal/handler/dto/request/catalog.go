package request

import (
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceAttributes struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	Location      string           `json:"location"`
	Price         *decimal.Decimal `json:"price"`
	OccasionTypes []string         `json:"occasionTypes"`
	VenueID       *uuid.UUID       `json:"venueId"`
}

func (a ServiceAttributes) toDomain() catalog.Attributes {
	attrs := catalog.Attributes{
		Title:         a.Title,
		Description:   a.Description,
		Image:         a.Image,
		Location:      a.Location,
		OccasionTypes: a.OccasionTypes,
		VenueID:       a.VenueID,
	}
	if a.Price != nil {
		attrs.Price = *a.Price
	}
	return attrs
}

type CreateServiceRequest struct {
	Type string `json:"type" binding:"required"`
	ServiceAttributes
}

func (r *CreateServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{Kind: r.Type, Attributes: r.ServiceAttributes.toDomain()}
}

// BulkCreateServicesRequest adds several items of one business in a single call.
type BulkCreateServicesRequest struct {
	Venues        []ServiceAttributes `json:"venues"`
	DecorItems    []ServiceAttributes `json:"decorItems"`
	CateringItems []ServiceAttributes `json:"cateringItems"`
	MenuItems     []ServiceAttributes `json:"menuItems"`
}

func (r *BulkCreateServicesRequest) ToInputs() []commands.ServiceInput {
	groups := []struct {
		kind  catalog.Kind
		items []ServiceAttributes
	}{
		{catalog.KindVenue, r.Venues},
		{catalog.KindDecor, r.DecorItems},
		{catalog.KindCatering, r.CateringItems},
		{catalog.KindMenu, r.MenuItems},
	}
	var inputs []commands.ServiceInput
	for _, g := range groups {
		for _, item := range g.items {
			inputs = append(inputs, commands.ServiceInput{Kind: g.kind.String(), Attributes: item.toDomain()})
		}
	}
	return inputs
}

type UpdateServiceRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Image         *string          `json:"image"`
	Location      *string          `json:"location"`
	Price         *decimal.Decimal `json:"price"`
	OccasionTypes *[]string        `json:"occasionTypes"`
	VenueID       *uuid.UUID       `json:"venueId"`
}

func (r *UpdateServiceRequest) ToPatch() catalog.Patch {
	return catalog.Patch{
		Title:         r.Title,
		Description:   r.Description,
		Image:         r.Image,
		Location:      r.Location,
		Price:         r.Price,
		OccasionTypes: r.OccasionTypes,
		VenueID:       r.VenueID,
	}
}
