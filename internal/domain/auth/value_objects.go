package auth

import (
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials validates login input. Strength rules apply at registration only.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Registration is the validated input for a new account.
type Registration struct {
	name     string
	email    user.Email
	password user.Password
	phone    user.PhoneNumber
	role     user.Role
}

func NewRegistration(name, emailStr, passwordStr, phoneStr, roleStr string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}
	phone, err := user.NewPhoneNumber(phoneStr)
	if err != nil {
		return Registration{}, err
	}
	if roleStr == "" {
		roleStr = user.RoleCustomer.String()
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return Registration{}, err
	}
	if !role.IsSelfAssignable() {
		return Registration{}, user.ErrInvalidRole
	}

	return Registration{
		name:     name,
		email:    email,
		password: password,
		phone:    phone,
		role:     role,
	}, nil
}

func (r Registration) Name() string                  { return r.name }
func (r Registration) Email() user.Email             { return r.email }
func (r Registration) Password() user.Password       { return r.password }
func (r Registration) PhoneNumber() user.PhoneNumber { return r.phone }
func (r Registration) Role() user.Role               { return r.role }
