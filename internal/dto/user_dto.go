package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email     string                 `json:"email" validate:"required,email"`
	FirstName string                 `json:"first_name" validate:"omitempty,max=255"`
	LastName  string                 `json:"last_name" validate:"omitempty,max=255"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type UserResponse struct {
	Id        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name,omitempty"`
	LastName  string                 `json:"last_name,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type RegisterUserResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
}
