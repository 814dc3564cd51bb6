package request

import (
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/usecase/commands"
)

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"omitempty,oneof=customer business"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries only the fields being changed.
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber"`
	Image       *string `json:"image" binding:"omitempty,max=500"`
}

func (r *UpdateProfileRequest) ToPatch() user.ProfilePatch {
	return user.ProfilePatch{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Image:       r.Image,
	}
}
