package shared

import "github.com/google/uuid"

// UserCredentials is the write-side view of an account used to verify a login.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}
