package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	BusinessID    uuid.UUID
	VenueID       uuid.UUID
	DecorIds      []uuid.UUID
	CateringIds   []uuid.UUID
	MenuIds       []uuid.UUID
	EventDate     string
	StartTime     string
	EndTime       string
	Status        string
	PaymentStatus string
	TotalPrice    string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Service struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Kind          string
	Title         string
	Description   pgtype.Text
	Image         pgtype.Text
	Price         string
	Location      pgtype.Text
	OccasionTypes []string
	VenueID       pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PhoneNumber  pgtype.Text
	PasswordHash string
	Role         string
	Image        pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
