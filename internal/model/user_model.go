package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is the persistence model. The unique index on email is the actual
// uniqueness guarantee; the service's lookup-before-create is only a fast
// path for the common case.
type User struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Email     string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName string            `gorm:"type:varchar(255)"`
	LastName  string            `gorm:"type:varchar(255)"`
	Metadata  datatypes.JSONMap
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
