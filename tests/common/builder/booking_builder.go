//go:build unit || e2e

package builder

import (
	"time"

	"bookmyvenue/internal/domain/booking"
	reqdto "bookmyvenue/internal/handler/dto/request"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	BusinessID    uuid.UUID
	VenueID       uuid.UUID
	EventDate     string
	StartTime     string
	EndTime       string
	DecorIDs      []uuid.UUID
	CateringIDs   []uuid.UUID
	MenuIDs       []uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		BusinessID:    uuid.New(),
		VenueID:       uuid.New(),
		EventDate:     "2025-06-01",
		StartTime:     "10:00",
		EndTime:       "12:00",
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentUnpaid,
		TotalPrice:    decimal.NewFromInt(1000),
		CreatedAt:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(date, start, end string) *BookingBuilder {
	b.EventDate, b.StartTime, b.EndTime = date, start, end
	return b
}

func (b *BookingBuilder) WithParties(customerID, businessID uuid.UUID) *BookingBuilder {
	b.CustomerID, b.BusinessID = customerID, businessID
	return b
}

func (b *BookingBuilder) WithVenue(venueID uuid.UUID) *BookingBuilder {
	b.VenueID = venueID
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithPayment(p booking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = p
	return b
}

func (b *BookingBuilder) BuildCandidateInput() booking.CandidateInput {
	return booking.CandidateInput{
		VenueID:     b.VenueID,
		BusinessID:  b.BusinessID,
		EventDate:   b.EventDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		DecorIDs:    b.DecorIDs,
		CateringIDs: b.CateringIDs,
		MenuIDs:     b.MenuIDs,
	}
}

// BuildDomain reconstructs a stored booking; the slot must be well formed.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.NewEventDate(b.EventDate)
	if err != nil {
		panic(err)
	}
	start, err := booking.NewClockTime(b.StartTime)
	if err != nil {
		panic(err)
	}
	end, err := booking.NewClockTime(b.EndTime)
	if err != nil {
		panic(err)
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.CustomerID, b.BusinessID, b.VenueID,
		booking.NewSelections(b.DecorIDs, b.CateringIDs, b.MenuIDs),
		date, interval, b.Status, b.PaymentStatus, b.TotalPrice,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:     b.VenueID.String(),
		BusinessID:  b.BusinessID.String(),
		EventDate:   b.EventDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		DecorIDs:    idStrings(b.DecorIDs),
		CateringIDs: idStrings(b.CateringIDs),
		MenuIDs:     idStrings(b.MenuIDs),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		BusinessID:    b.BusinessID,
		VenueID:       b.VenueID,
		DecorIDs:      b.DecorIDs,
		CateringIDs:   b.CateringIDs,
		MenuIDs:       b.MenuIDs,
		EventDate:     b.EventDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

// BuildRow is the booking as the database hands it back; nil id lists stay nil.
func (b *BookingBuilder) BuildRow() sqlc.Booking {
	return sqlc.Booking{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		BusinessID:    b.BusinessID,
		VenueID:       b.VenueID,
		DecorIds:      b.DecorIDs,
		CateringIds:   b.CateringIDs,
		MenuIds:       b.MenuIDs,
		EventDate:     b.EventDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		TotalPrice:    pgconv.DecimalToText(b.TotalPrice),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func idStrings(ids []uuid.UUID) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
