package dto

import "github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"

type RegisterRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"required,max=32"`
	Password   string `json:"password" validate:"required,max=72"`
	Occupation string `json:"occupation" validate:"required,max=255"`
	Address    string `json:"address" validate:"required"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID         uint                 `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Occupation string               `json:"occupation"`
	Address    string               `json:"address"`
	Status     models.AccountStatus `json:"status"`
}

type UserLoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// UpdateStatusRequest toggles the user's status when Status is empty.
// UserID is the key older clients send.
type UpdateStatusRequest struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userId"`
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Message   string               `json:"message"`
	NewStatus models.AccountStatus `json:"newStatus"`
}

type AdminSignupRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role" validate:"required,max=50"`
}

type AdminLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type AdminResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
