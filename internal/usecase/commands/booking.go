package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"encoding/json"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/metrics"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobKindBookingEvent = "booking_event"

	TopicBookingCreated            = "booking.created"
	TopicBookingStatusChanged      = "booking.status_changed"
	TopicBookingPaymentChanged     = "booking.payment_changed"
	TopicBookingSelectionsReplaced = "booking.selections_replaced"
	TopicBookingDeleted            = "booking.deleted"
)

type BookingCommands interface {
	RequestBooking(ctx context.Context, customerID uuid.UUID, in booking.CandidateInput) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, actorID, bookingID uuid.UUID, status string) error
	Cancel(ctx context.Context, actorID, bookingID uuid.UUID) error
	UpdatePaymentStatus(ctx context.Context, actorID, bookingID uuid.UUID, paymentStatus string) error
	ReplaceSelections(ctx context.Context, actorID, bookingID uuid.UUID, in SelectionsInput) error
	Delete(ctx context.Context, actorID, bookingID uuid.UUID) error
}

type SelectionsInput struct {
	DecorIDs    []uuid.UUID
	CateringIDs []uuid.UUID
	MenuIDs     []uuid.UUID
}

type bookingEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	ActorID       uuid.UUID `json:"actorId"`
	CustomerID    uuid.UUID `json:"customerId"`
	BusinessID    uuid.UUID `json:"businessId"`
	VenueID       uuid.UUID `json:"venueId"`
	EventDate     string    `json:"eventDate"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	metrics  *metrics.Metrics
}

func NewBookingUseCase(uow shared.UnitOfWork, services *booking.Services, m *metrics.Metrics) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, services: services, metrics: m}
}

// RequestBooking validates the candidate, checks it against the catalog and then admits it
// under the venue/day slot lock so that two overlapping requests can never both succeed.
func (uc *bookingUseCaseImpl) RequestBooking(ctx context.Context, customerID uuid.UUID, in booking.CandidateInput) (uuid.UUID, error) {
	candidate, err := booking.NewCandidate(in)
	if err != nil {
		uc.metrics.TrackBookingRequest(metrics.ResultInvalid)
		return uuid.Nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		quote, qerr := resolveQuote(ctx, tx.Reads(), candidate.VenueID(), candidate.BusinessID(), candidate.Selections())
		if qerr != nil {
			return qerr
		}

		if lerr := tx.LockSlot(ctx, candidate.VenueID(), candidate.EventDate()); lerr != nil {
			return lerr
		}
		existing, rerr := tx.Reads().ActiveBookingsForVenueDay(ctx, candidate.VenueID(), candidate.EventDate())
		if rerr != nil {
			return rerr
		}

		b, derr := booking.NewBooking(uc.services, customerID, candidate, quote, existing)
		if derr != nil {
			return derr
		}
		if cerr := tx.Bookings().Create(ctx, tx.DB(), b); cerr != nil {
			return cerr
		}
		created = b
		return uc.enqueueEvent(ctx, tx, TopicBookingCreated, customerID, b)
	})
	if err != nil {
		err = storeErr(err)
		uc.metrics.TrackBookingRequest(requestResult(err))
		return uuid.Nil, err
	}

	uc.metrics.TrackBookingRequest(metrics.ResultAccepted)
	return created.ID(), nil
}

func (uc *bookingUseCaseImpl) ChangeStatus(ctx context.Context, actorID, bookingID uuid.UUID, status string) error {
	return uc.mutate(ctx, "change_status", actorID, bookingID, TopicBookingStatusChanged,
		func(_ context.Context, _ shared.Tx, b *booking.Booking) error {
			return b.TransitionTo(uc.services, actorID, booking.Status(status))
		})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actorID, bookingID uuid.UUID) error {
	return uc.mutate(ctx, "cancel", actorID, bookingID, TopicBookingStatusChanged,
		func(_ context.Context, _ shared.Tx, b *booking.Booking) error {
			return b.Cancel(uc.services, actorID)
		})
}

func (uc *bookingUseCaseImpl) UpdatePaymentStatus(ctx context.Context, actorID, bookingID uuid.UUID, paymentStatus string) error {
	return uc.mutate(ctx, "update_payment", actorID, bookingID, TopicBookingPaymentChanged,
		func(_ context.Context, _ shared.Tx, b *booking.Booking) error {
			return b.SetPaymentStatus(uc.services, actorID, booking.PaymentStatus(paymentStatus))
		})
}

// ReplaceSelections checks party and status before touching the catalog so that
// authorization failures are reported ahead of selection problems.
func (uc *bookingUseCaseImpl) ReplaceSelections(ctx context.Context, actorID, bookingID uuid.UUID, in SelectionsInput) error {
	selections := booking.NewSelections(in.DecorIDs, in.CateringIDs, in.MenuIDs)
	return uc.mutate(ctx, "replace_selections", actorID, bookingID, TopicBookingSelectionsReplaced,
		func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
			if !b.IsParty(actorID) {
				return booking.ErrNotAuthorized
			}
			if b.Status().IsTerminal() {
				return booking.ErrInvalidTransition
			}
			quote, err := resolveQuote(ctx, tx.Reads(), b.VenueID(), b.BusinessID(), selections)
			if err != nil {
				return err
			}
			return b.ReplaceSelections(uc.services, actorID, selections, quote)
		})
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, actorID, bookingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.AuthorizeDeletion(actorID); err != nil {
			return err
		}
		if err := tx.Bookings().Delete(ctx, tx.DB(), b.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		return uc.enqueueEvent(ctx, tx, TopicBookingDeleted, actorID, b)
	})
	err = storeErr(err)
	uc.metrics.TrackTransition("delete", transitionResult(err))
	return err
}

// mutate runs one lifecycle change on a row-locked booking and persists it together with its outbox event.
func (uc *bookingUseCaseImpl) mutate(
	ctx context.Context,
	operation string,
	actorID, bookingID uuid.UUID,
	topic string,
	change func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := change(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		return uc.enqueueEvent(ctx, tx, topic, actorID, b)
	})
	err = storeErr(err)
	uc.metrics.TrackTransition(operation, transitionResult(err))
	return err
}

func loadForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) enqueueEvent(ctx context.Context, tx shared.Tx, topic string, actorID uuid.UUID, b *booking.Booking) error {
	payload, err := json.Marshal(bookingEvent{
		BookingID:     b.ID(),
		ActorID:       actorID,
		CustomerID:    b.CustomerID(),
		BusinessID:    b.BusinessID(),
		VenueID:       b.VenueID(),
		EventDate:     b.EventDate().String(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindBookingEvent, topic, payload, uc.services.Clock.Now())
}

// resolveQuote checks the venue and every selected item against the catalog and collects their prices.
// Items must have the kind of the list they were sent in and belong to the venue's business.
func resolveQuote(
	ctx context.Context,
	reads shared.CommandReads,
	venueID, businessID uuid.UUID,
	selections booking.Selections,
) (booking.Quote, error) {
	venue, err := reads.ServiceByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Quote{}, ErrVenueNotFound
		}
		return booking.Quote{}, err
	}
	if !venue.IsVenue() {
		return booking.Quote{}, ErrVenueNotFound
	}
	if !venue.OwnedBy(businessID) {
		return booking.Quote{}, ErrInvalidSelection
	}

	quote := booking.Quote{Venue: venue.Price()}
	if selections.IsEmpty() {
		return quote, nil
	}

	items, err := reads.ServicesByIDs(ctx, selections.All())
	if err != nil {
		return booking.Quote{}, err
	}
	byID := make(map[uuid.UUID]*catalog.Service, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	groups := []struct {
		kind catalog.Kind
		ids  []uuid.UUID
	}{
		{catalog.KindDecor, selections.DecorIDs()},
		{catalog.KindCatering, selections.CateringIDs()},
		{catalog.KindMenu, selections.MenuIDs()},
	}
	for _, g := range groups {
		for _, id := range g.ids {
			item, ok := byID[id]
			if !ok || item.Kind() != g.kind || !item.OwnedBy(businessID) {
				return booking.Quote{}, ErrInvalidSelection
			}
			quote.Items = append(quote.Items, item.Price())
		}
	}
	return quote, nil
}

func requestResult(err error) string {
	switch {
	case errs.Is(err, booking.ErrSlotConflict):
		return metrics.ResultSlotConflict
	case errs.IsAny(err, ErrVenueNotFound, ErrInvalidSelection, booking.ErrMissingField,
		booking.ErrMalformedField, booking.ErrInvalidRange):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, booking.ErrNotAuthorized):
		return "not_authorized"
	case errs.Is(err, booking.ErrInvalidTransition):
		return "invalid_transition"
	case errs.Is(err, ErrBookingNotFound):
		return "not_found"
	default:
		return "error"
	}
}
