package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceSummary is the expanded form of a catalog reference inside a booking.
type ServiceSummary struct {
	ID    uuid.UUID       `json:"id"`
	Kind  string          `json:"kind"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type BookingView struct {
	ID            uuid.UUID        `json:"id"`
	CustomerID    uuid.UUID        `json:"customerId"`
	BusinessID    uuid.UUID        `json:"businessId"`
	VenueID       uuid.UUID        `json:"venueId"`
	Venue         *ServiceSummary  `json:"venue,omitempty"`
	DecorIDs      []uuid.UUID      `json:"decorIds"`
	CateringIDs   []uuid.UUID      `json:"cateringIds"`
	MenuIDs       []uuid.UUID      `json:"menuIds"`
	Decor         []ServiceSummary `json:"decor"`
	Catering      []ServiceSummary `json:"catering"`
	Menu          []ServiceSummary `json:"menu"`
	EventDate     string           `json:"eventDate"`
	StartTime     string           `json:"startTime"`
	EndTime       string           `json:"endTime"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	TotalPrice    decimal.Decimal  `json:"totalPrice"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// SlotView exposes when a venue is taken without revealing who booked it.
type SlotView struct {
	EventDate string `json:"eventDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

type ServiceView struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	Kind          string          `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Image         string          `json:"image,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Location      string          `json:"location,omitempty"`
	OccasionTypes []string        `json:"occasionTypes,omitempty"`
	VenueID       *uuid.UUID      `json:"venueId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// VenueDetailView is a venue together with every item its owner offers alongside it.
type VenueDetailView struct {
	Venue    ServiceView   `json:"venue"`
	Decor    []ServiceView `json:"decorItems"`
	Catering []ServiceView `json:"cateringItems"`
	Menu     []ServiceView `json:"menuItems"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
