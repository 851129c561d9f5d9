package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place is a candidate meeting venue, optionally grouped into a category.
type Place struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	AddressRaw     string     `json:"address_raw"`
	AddressDisplay *string    `json:"address_display"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Category       *Category  `json:"category,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasCoordinates reports whether the place has been geocoded.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil && *p.Latitude != 0 && *p.Longitude != 0
}
