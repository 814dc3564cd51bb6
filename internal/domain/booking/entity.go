package booking

import (
	"time"

	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingField      = errs.New("missing required fields")
	ErrMalformedField    = errs.New("invalid date or time format")
	ErrInvalidRange      = errs.New("start time must be before end time")
	ErrSlotConflict      = errs.New("time slot already booked")
	ErrNotAuthorized     = errs.New("not authorized for this booking")
	ErrInvalidTransition = errs.New("invalid status transition")
)

// Policy toggles lifecycle rules that differ between deployments.
type Policy struct {
	RequirePaymentForConfirm bool
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

type CandidateInput struct {
	VenueID     uuid.UUID
	BusinessID  uuid.UUID
	EventDate   string
	StartTime   string
	EndTime     string
	DecorIDs    []uuid.UUID
	CateringIDs []uuid.UUID
	MenuIDs     []uuid.UUID
}

// Candidate is a validated booking request that has not been checked against existing bookings yet.
type Candidate struct {
	venueID    uuid.UUID
	businessID uuid.UUID
	date       EventDate
	interval   Interval
	selections Selections
}

// NewCandidate checks presence of every required field first, then formats, then the range.
func NewCandidate(in CandidateInput) (Candidate, error) {
	if in.VenueID == uuid.Nil || in.BusinessID == uuid.Nil ||
		in.EventDate == "" || in.StartTime == "" || in.EndTime == "" {
		return Candidate{}, ErrMissingField
	}

	date, err := NewEventDate(in.EventDate)
	if err != nil {
		return Candidate{}, err
	}
	start, err := NewClockTime(in.StartTime)
	if err != nil {
		return Candidate{}, err
	}
	end, err := NewClockTime(in.EndTime)
	if err != nil {
		return Candidate{}, err
	}
	interval, err := NewInterval(start, end)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{
		venueID:    in.VenueID,
		businessID: in.BusinessID,
		date:       date,
		interval:   interval,
		selections: NewSelections(in.DecorIDs, in.CateringIDs, in.MenuIDs),
	}, nil
}

func (c Candidate) VenueID() uuid.UUID     { return c.venueID }
func (c Candidate) BusinessID() uuid.UUID  { return c.businessID }
func (c Candidate) EventDate() EventDate   { return c.date }
func (c Candidate) Interval() Interval     { return c.interval }
func (c Candidate) Selections() Selections { return c.selections }

type Booking struct {
	id            uuid.UUID
	customerID    uuid.UUID
	businessID    uuid.UUID
	venueID       uuid.UUID
	selections    Selections
	eventDate     EventDate
	interval      Interval
	status        Status
	paymentStatus PaymentStatus
	totalPrice    decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking admits a candidate against the bookings already stored for the same venue and day.
// The caller must hold the slot lock while existing is read and the result is stored.
func NewBooking(services *Services, customerID uuid.UUID, c Candidate, quote Quote, existing []*Booking) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingField
	}
	if conflict := FindConflict(c.venueID, c.date, c.interval, existing); conflict != nil {
		return nil, ErrSlotConflict
	}

	now := services.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		businessID:    c.businessID,
		venueID:       c.venueID,
		selections:    c.selections,
		eventDate:     c.date,
		interval:      c.interval,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		totalPrice:    services.PriceCalculator.Calculate(quote),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, customerID, businessID, venueID uuid.UUID,
	selections Selections,
	eventDate EventDate,
	interval Interval,
	status Status,
	paymentStatus PaymentStatus,
	totalPrice decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		venueID:       venueID,
		selections:    selections,
		eventDate:     eventDate,
		interval:      interval,
		status:        status,
		paymentStatus: paymentStatus,
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) partyOf(actor uuid.UUID) party {
	var p party
	if actor == uuid.Nil {
		return p
	}
	if actor == b.customerID {
		p |= partyCustomer
	}
	if actor == b.businessID {
		p |= partyBusiness
	}
	return p
}

// IsParty reports whether actor is the booking's customer or its business.
func (b *Booking) IsParty(actor uuid.UUID) bool {
	return b.partyOf(actor) != 0
}

// TransitionTo moves the booking to target on behalf of actor.
// Authorization is checked before the lifecycle table; a failed call leaves the booking untouched.
func (b *Booking) TransitionTo(services *Services, actor uuid.UUID, target Status) error {
	p := b.partyOf(actor)
	if p == 0 {
		return ErrNotAuthorized
	}

	allowed, ok := transitions[b.status][target]
	if !ok {
		return ErrInvalidTransition
	}
	if allowed&p == 0 {
		return ErrNotAuthorized
	}
	if target == StatusConfirmed && services.Policy.RequirePaymentForConfirm && b.paymentStatus != PaymentPaid {
		return ErrInvalidTransition
	}

	b.status = target
	b.updatedAt = services.Clock.Now()
	return nil
}

func (b *Booking) Cancel(services *Services, actor uuid.UUID) error {
	return b.TransitionTo(services, actor, StatusCancelled)
}

func (b *Booking) Confirm(services *Services, actor uuid.UUID) error {
	return b.TransitionTo(services, actor, StatusConfirmed)
}

func (b *Booking) Complete(services *Services, actor uuid.UUID) error {
	return b.TransitionTo(services, actor, StatusCompleted)
}

// SetPaymentStatus overwrites the payment flag. Any legal value may replace any other.
func (b *Booking) SetPaymentStatus(services *Services, actor uuid.UUID, ps PaymentStatus) error {
	if b.partyOf(actor) == 0 {
		return ErrNotAuthorized
	}
	if !ps.IsValid() {
		return ErrInvalidTransition
	}

	b.paymentStatus = ps
	b.updatedAt = services.Clock.Now()
	return nil
}

// ReplaceSelections swaps the whole decor/catering/menu set and reprices the booking.
func (b *Booking) ReplaceSelections(services *Services, actor uuid.UUID, selections Selections, quote Quote) error {
	if b.partyOf(actor) == 0 {
		return ErrNotAuthorized
	}
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}

	b.selections = selections
	b.totalPrice = services.PriceCalculator.Calculate(quote)
	b.updatedAt = services.Clock.Now()
	return nil
}

// AuthorizeDeletion allows only the business to remove a booking, whatever its status.
func (b *Booking) AuthorizeDeletion(actor uuid.UUID) error {
	if b.partyOf(actor)&partyBusiness == 0 {
		return ErrNotAuthorized
	}
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) BusinessID() uuid.UUID        { return b.businessID }
func (b *Booking) VenueID() uuid.UUID           { return b.venueID }
func (b *Booking) Selections() Selections       { return b.selections }
func (b *Booking) EventDate() EventDate         { return b.eventDate }
func (b *Booking) Interval() Interval           { return b.interval }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) TotalPrice() decimal.Decimal  { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
