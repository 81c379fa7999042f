package dto

import "github.com/google/uuid"

// UserRegisteredMessage is the payload published on the user-registered
// topic and consumed by the memory-service sync consumer.
type UserRegisteredMessage struct {
	UserId    uuid.UUID              `json:"user_id"`
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name,omitempty"`
	LastName  string                 `json:"last_name,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}
