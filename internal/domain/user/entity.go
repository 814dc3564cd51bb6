package user

import (
	"strings"
	"time"

	"bookmyvenue/internal/pkg/patch"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         string
	email        Email
	phoneNumber  PhoneNumber
	passwordHash string
	role         Role
	image        string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, phone PhoneNumber, passwordHash string, role Role, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phoneNumber:  phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone PhoneNumber,
	passwordHash string,
	role Role,
	image string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		phoneNumber:  phone,
		passwordHash: passwordHash,
		role:         role,
		image:        image,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ProfilePatch edits the self-service fields; nil keeps the current value and an empty
// phone number or image clears it. Email, role and password are not editable here.
type ProfilePatch struct {
	Name        *string
	PhoneNumber *string
	Image       *string
}

// ApplyProfile validates the merged profile. On error the user is unchanged.
func (u *User) ApplyProfile(p ProfilePatch, now time.Time) error {
	name := strings.TrimSpace(patch.Coalesce(p.Name, u.name))
	if name == "" {
		return ErrNameRequired
	}
	phone := u.phoneNumber
	if p.PhoneNumber != nil {
		parsed, err := NewPhoneNumber(*p.PhoneNumber)
		if err != nil {
			return err
		}
		phone = parsed
	}

	u.name = name
	u.phoneNumber = phone
	u.image = strings.TrimSpace(patch.Coalesce(p.Image, u.image))
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Name() string              { return u.name }
func (u *User) Email() Email              { return u.email }
func (u *User) PhoneNumber() PhoneNumber  { return u.phoneNumber }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) Image() string             { return u.image }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
