package catalog

import (
	"slices"
	"strings"
	"time"

	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind         = errs.New("invalid service kind")
	ErrTitleRequired       = errs.New("title is required")
	ErrDescriptionRequired = errs.New("description is required")
	ErrVenueRequired       = errs.New("venue id is required")
	ErrNegativePrice       = errs.New("price cannot be negative")
	ErrMissingOwner        = errs.New("owner is required")
)

type Attributes struct {
	Title         string
	Description   string
	Image         string
	Location      string
	Price         decimal.Decimal
	OccasionTypes []string
	VenueID       *uuid.UUID
}

// Patch is a partial update; nil fields keep their current value. The kind never changes.
type Patch struct {
	Title         *string
	Description   *string
	Image         *string
	Location      *string
	Price         *decimal.Decimal
	OccasionTypes *[]string
	VenueID       *uuid.UUID
}

// Service is one catalog entry: a venue, or a decor, catering or menu item anchored to a venue.
type Service struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	kind          Kind
	title         string
	description   string
	image         string
	location      string
	price         decimal.Decimal
	occasionTypes []string
	venueID       *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewService(ownerID uuid.UUID, kind Kind, attrs Attributes, now time.Time) (*Service, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	s := &Service{
		id:        uuid.New(),
		ownerID:   ownerID,
		kind:      kind,
		createdAt: now,
		updatedAt: now,
	}
	if err := s.assign(attrs); err != nil {
		return nil, err
	}
	return s, nil
}

func NewVenue(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Service, error) {
	return NewService(ownerID, KindVenue, attrs, now)
}

func NewDecor(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Service, error) {
	return NewService(ownerID, KindDecor, attrs, now)
}

func NewCatering(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Service, error) {
	return NewService(ownerID, KindCatering, attrs, now)
}

func NewMenu(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Service, error) {
	return NewService(ownerID, KindMenu, attrs, now)
}

func ReconstructService(
	id, ownerID uuid.UUID,
	kind Kind,
	attrs Attributes,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:            id,
		ownerID:       ownerID,
		kind:          kind,
		title:         attrs.Title,
		description:   attrs.Description,
		image:         attrs.Image,
		location:      attrs.Location,
		price:         attrs.Price,
		occasionTypes: attrs.OccasionTypes,
		venueID:       attrs.VenueID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply merges p into the service and re-runs the kind's validation. On error the service is unchanged.
func (s *Service) Apply(p Patch, now time.Time) error {
	merged := Attributes{
		Title:         patch.Coalesce(p.Title, s.title),
		Description:   patch.Coalesce(p.Description, s.description),
		Image:         patch.Coalesce(p.Image, s.image),
		Location:      patch.Coalesce(p.Location, s.location),
		Price:         patch.Coalesce(p.Price, s.price),
		OccasionTypes: patch.Coalesce(p.OccasionTypes, s.occasionTypes),
		VenueID:       s.venueID,
	}
	if p.VenueID != nil {
		merged.VenueID = p.VenueID
	}

	candidate := *s
	if err := candidate.assign(merged); err != nil {
		return err
	}
	candidate.updatedAt = now
	*s = candidate
	return nil
}

func (s *Service) assign(attrs Attributes) error {
	req := kindRequirements[s.kind]

	title := strings.TrimSpace(attrs.Title)
	if title == "" {
		return ErrTitleRequired
	}
	description := strings.TrimSpace(attrs.Description)
	if req.description && description == "" {
		return ErrDescriptionRequired
	}
	if req.venue && (attrs.VenueID == nil || *attrs.VenueID == uuid.Nil) {
		return ErrVenueRequired
	}
	if attrs.Price.IsNegative() {
		return ErrNegativePrice
	}

	s.title = title
	s.description = description
	s.image = strings.TrimSpace(attrs.Image)
	s.location = strings.TrimSpace(attrs.Location)
	s.price = attrs.Price.Round(2)
	s.occasionTypes = nil
	if req.occasions {
		s.occasionTypes = normalizeOccasions(attrs.OccasionTypes)
	}
	s.venueID = nil
	if req.venue {
		id := *attrs.VenueID
		s.venueID = &id
	}
	return nil
}

func normalizeOccasions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		o = strings.TrimSpace(o)
		if o == "" || slices.Contains(out, o) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Service) IsVenue() bool { return s.kind == KindVenue }

func (s *Service) OwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && s.ownerID == userID
}

func (s *Service) ID() uuid.UUID            { return s.id }
func (s *Service) OwnerID() uuid.UUID       { return s.ownerID }
func (s *Service) Kind() Kind               { return s.kind }
func (s *Service) Title() string            { return s.title }
func (s *Service) Description() string      { return s.description }
func (s *Service) Image() string            { return s.image }
func (s *Service) Location() string         { return s.location }
func (s *Service) Price() decimal.Decimal   { return s.price }
func (s *Service) OccasionTypes() []string  { return slices.Clone(s.occasionTypes) }
func (s *Service) VenueID() *uuid.UUID      { return s.venueID }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }
