package dto

import (
	"time"

	"riskscreen_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Name     string          `json:"name,omitempty" validate:"omitempty,max=120"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=member admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInRequest carries the opaque ID token ("credential") produced by
// Google Identity Services on the frontend.
type GoogleSignInRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// AuthResponse is returned by login and Google sign-in.
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type UserDTO struct {
	ID        uint              `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}
