package request

import (
	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest keeps every field as a string; presence and format are
// checked by ToDomain in that order so a missing field is never reported as malformed.
type CreateBookingRequest struct {
	VenueID     string   `json:"venueId"`
	BusinessID  string   `json:"businessId"`
	EventDate   string   `json:"eventDate"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	DecorIDs    []string `json:"decorIds"`
	CateringIDs []string `json:"cateringIds"`
	MenuIDs     []string `json:"menuIds"`
}

func (r *CreateBookingRequest) ToDomain() (booking.CandidateInput, error) {
	if r.VenueID == "" || r.BusinessID == "" || r.EventDate == "" || r.StartTime == "" || r.EndTime == "" {
		return booking.CandidateInput{}, booking.ErrMissingField
	}

	venueID, err := parseID(r.VenueID)
	if err != nil {
		return booking.CandidateInput{}, err
	}
	businessID, err := parseID(r.BusinessID)
	if err != nil {
		return booking.CandidateInput{}, err
	}
	sel, err := parseSelections(r.DecorIDs, r.CateringIDs, r.MenuIDs)
	if err != nil {
		return booking.CandidateInput{}, err
	}

	return booking.CandidateInput{
		VenueID:     venueID,
		BusinessID:  businessID,
		EventDate:   r.EventDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DecorIDs:    sel.DecorIDs,
		CateringIDs: sel.CateringIDs,
		MenuIDs:     sel.MenuIDs,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type ReplaceSelectionsRequest struct {
	DecorIDs    []string `json:"decorIds"`
	CateringIDs []string `json:"cateringIds"`
	MenuIDs     []string `json:"menuIds"`
}

func (r *ReplaceSelectionsRequest) ToInput() (commands.SelectionsInput, error) {
	return parseSelections(r.DecorIDs, r.CateringIDs, r.MenuIDs)
}

func parseSelections(decor, catering, menu []string) (commands.SelectionsInput, error) {
	var (
		in  commands.SelectionsInput
		err error
	)
	if in.DecorIDs, err = parseIDs(decor); err != nil {
		return commands.SelectionsInput{}, err
	}
	if in.CateringIDs, err = parseIDs(catering); err != nil {
		return commands.SelectionsInput{}, err
	}
	if in.MenuIDs, err = parseIDs(menu); err != nil {
		return commands.SelectionsInput{}, err
	}
	return in, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, booking.ErrMalformedField
	}
	return id, nil
}
