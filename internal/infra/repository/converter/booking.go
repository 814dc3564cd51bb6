package converter

import (
	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/pgconv"
)

var ErrCorruptBookingRow = errs.New("stored booking row is not valid")

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	sel := b.Selections()
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		CustomerID:    b.CustomerID(),
		BusinessID:    b.BusinessID(),
		VenueID:       b.VenueID(),
		DecorIds:      pgconv.NonNilUUIDs(sel.DecorIDs()),
		CateringIds:   pgconv.NonNilUUIDs(sel.CateringIDs()),
		MenuIds:       pgconv.NonNilUUIDs(sel.MenuIDs()),
		EventDate:     b.EventDate().String(),
		StartTime:     b.Interval().Start().String(),
		EndTime:       b.Interval().End().String(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		TotalPrice:    pgconv.DecimalToText(b.TotalPrice()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	sel := b.Selections()
	return sqlc.UpdateBookingStateParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		DecorIds:      pgconv.NonNilUUIDs(sel.DecorIDs()),
		CateringIds:   pgconv.NonNilUUIDs(sel.CateringIDs()),
		MenuIds:       pgconv.NonNilUUIDs(sel.MenuIDs()),
		TotalPrice:    pgconv.DecimalToText(b.TotalPrice()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. A row that fails domain validation is reported, never repaired.
func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	date, err := booking.NewEventDate(row.EventDate)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	start, err := booking.NewClockTime(row.StartTime)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	end, err := booking.NewClockTime(row.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrCorruptBookingRow, "booking %s status %q", row.ID, row.Status)
	}
	payment := booking.PaymentStatus(row.PaymentStatus)
	if !payment.IsValid() {
		return nil, errs.Wrapf(ErrCorruptBookingRow, "booking %s payment status %q", row.ID, row.PaymentStatus)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.CustomerID,
		row.BusinessID,
		row.VenueID,
		booking.NewSelections(row.DecorIds, row.CateringIds, row.MenuIds),
		date,
		interval,
		status,
		payment,
		total,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
