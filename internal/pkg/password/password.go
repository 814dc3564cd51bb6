package password

import (
	"bookmyvenue/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errs.New("invalid password")
	ErrMismatch        = errs.New("password does not match")
)

// bcrypt ignores input beyond this length, so longer passwords are rejected instead of truncated.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	return HashWithCost(password, bcrypt.DefaultCost)
}

// HashWithCost lets fixtures trade strength for speed; production code uses HashPassword.
func HashWithCost(password string, cost int) (string, error) {
	if password == "" || len(password) > maxPasswordBytes {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error for a corrupt hash.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
