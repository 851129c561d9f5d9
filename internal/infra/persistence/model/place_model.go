package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel mirrors the 'places' table. CategoryID is nullable with ON DELETE
// restricted at the application layer (categories in use cannot be deleted).
type PlaceModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name           string     `gorm:"type:varchar(100);not null"`
	AddressRaw     string     `gorm:"type:text;not null"`
	AddressDisplay *string    `gorm:"type:text"`
	Latitude       *float64   `gorm:"type:double precision"`
	Longitude      *float64   `gorm:"type:double precision"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
