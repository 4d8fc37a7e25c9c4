package dto

import (
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// RegisterRequest represents the payload for user registration
type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name" binding:"required"`
	Phone     *string         `json:"phone"`
	Role      models.RoleType `json:"role" binding:"required"`
	Password  string          `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login credentials, accepted as form or query values
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// UserResponse represents a user without credential material
type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Phone     *string         `json:"phone,omitempty"`
	Role      models.RoleType `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserResponse builds a UserResponse from a user model.
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
