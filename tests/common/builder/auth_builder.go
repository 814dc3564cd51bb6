//go:build unit || e2e

package builder

import (
	reqdto "bookmyvenue/internal/handler/dto/request"
	"bookmyvenue/internal/usecase/commands"
)

const DefaultPassword = "password123"

type AuthBuilder struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:        "Test User",
		Email:       "test@example.com",
		Password:    DefaultPassword,
		PhoneNumber: "+91 98765 43210",
		Role:        "customer",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:        a.Name,
		Email:       a.Email,
		Password:    a.Password,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
	}
}

func (a *AuthBuilder) BuildInput() commands.RegisterInput {
	dto := a.BuildRegisterDTO()
	return dto.ToInput()
}
