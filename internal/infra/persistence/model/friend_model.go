package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendModel mirrors the 'friends' table. Coordinates are nullable; they stay
// NULL until geocoding succeeds.
type FriendModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	AddressRaw     string    `gorm:"type:text;not null"`
	AddressDisplay *string   `gorm:"type:text"`
	Latitude       *float64  `gorm:"type:double precision"`
	Longitude      *float64  `gorm:"type:double precision"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendModel) TableName() string {
	return "friends"
}
