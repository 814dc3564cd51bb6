package response

import (
	"time"

	"bookmyvenue/internal/usecase/queries"
)

type ServiceResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"ownerId"`
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image,omitempty"`
	Price         string   `json:"price"`
	Location      string   `json:"location,omitempty"`
	OccasionTypes []string `json:"occasionTypes,omitempty"`
	VenueID       string   `json:"venueId,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	res := &ServiceResponse{
		ID:            v.ID.String(),
		OwnerID:       v.OwnerID.String(),
		Type:          v.Kind,
		Title:         v.Title,
		Description:   v.Description,
		Image:         v.Image,
		Price:         v.Price.StringFixed(2),
		Location:      v.Location,
		OccasionTypes: v.OccasionTypes,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
	if v.VenueID != nil {
		res.VenueID = v.VenueID.String()
	}
	return res
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(views))
	for i, v := range views {
		res[i] = FromServiceView(v)
	}
	return res
}

type VenueDetailResponse struct {
	Venue         *ServiceResponse   `json:"venue"`
	DecorItems    []*ServiceResponse `json:"decorItems"`
	CateringItems []*ServiceResponse `json:"cateringItems"`
	MenuItems     []*ServiceResponse `json:"menuItems"`
}

func FromVenueDetail(d *queries.VenueDetailView) *VenueDetailResponse {
	return &VenueDetailResponse{
		Venue:         FromServiceView(&d.Venue),
		DecorItems:    fromServiceValues(d.Decor),
		CateringItems: fromServiceValues(d.Catering),
		MenuItems:     fromServiceValues(d.Menu),
	}
}

func fromServiceValues(in []queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(in))
	for i := range in {
		out[i] = FromServiceView(&in[i])
	}
	return out
}

type CreatedListResponse struct {
	IDs []string `json:"ids"`
}
