package dto

import (
	"time"

	"github.com/google/uuid"
)

type SyncUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"max=255"`
	Preferences string `json:"preferences" validate:"omitempty,json"`
}

type UpdatePreferencesRequest struct {
	Preferences string `json:"preferences" validate:"required,json"`
}

type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Preferences string    `json:"preferences"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
