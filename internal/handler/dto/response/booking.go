package response

import (
	"time"

	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceSummaryResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type BookingResponse struct {
	ID            string                   `json:"id"`
	CustomerID    string                   `json:"customerId"`
	BusinessID    string                   `json:"businessId"`
	VenueID       string                   `json:"venueId"`
	Venue         *ServiceSummaryResponse  `json:"venue,omitempty"`
	DecorIDs      []string                 `json:"decorIds"`
	CateringIDs   []string                 `json:"cateringIds"`
	MenuIDs       []string                 `json:"menuIds"`
	Decor         []ServiceSummaryResponse `json:"decor"`
	Catering      []ServiceSummaryResponse `json:"catering"`
	Menu          []ServiceSummaryResponse `json:"menu"`
	EventDate     string                   `json:"eventDate"`
	StartTime     string                   `json:"startTime"`
	EndTime       string                   `json:"endTime"`
	Status        string                   `json:"status"`
	PaymentStatus string                   `json:"paymentStatus"`
	TotalPrice    string                   `json:"totalPrice"`
	CreatedAt     string                   `json:"createdAt"`
	UpdatedAt     string                   `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:            v.ID.String(),
		CustomerID:    v.CustomerID.String(),
		BusinessID:    v.BusinessID.String(),
		VenueID:       v.VenueID.String(),
		DecorIDs:      idStrings(v.DecorIDs),
		CateringIDs:   idStrings(v.CateringIDs),
		MenuIDs:       idStrings(v.MenuIDs),
		Decor:         fromSummaries(v.Decor),
		Catering:      fromSummaries(v.Catering),
		Menu:          fromSummaries(v.Menu),
		EventDate:     v.EventDate,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		TotalPrice:    v.TotalPrice.StringFixed(2),
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
	if v.Venue != nil {
		venue := fromSummary(*v.Venue)
		res.Venue = &venue
	}
	return res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingPageResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

type SlotResponse struct {
	EventDate string `json:"eventDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

func FromSlots(slots []*queries.SlotView) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = SlotResponse{EventDate: s.EventDate, StartTime: s.StartTime, EndTime: s.EndTime, Status: s.Status}
	}
	return res
}

func fromSummary(s queries.ServiceSummary) ServiceSummaryResponse {
	return ServiceSummaryResponse{ID: s.ID.String(), Kind: s.Kind, Title: s.Title, Price: s.Price.StringFixed(2)}
}

func fromSummaries(in []queries.ServiceSummary) []ServiceSummaryResponse {
	out := make([]ServiceSummaryResponse, len(in))
	for i, s := range in {
		out[i] = fromSummary(s)
	}
	return out
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
