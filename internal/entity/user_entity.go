package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Metadata  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}
