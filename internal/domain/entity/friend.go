package entity

import (
	"time"

	"github.com/google/uuid"
)

// Friend is a person whose travel time to candidate meeting places is computed.
// Latitude/Longitude stay nil until the raw address has been geocoded; a friend
// without coordinates is still listable but cannot be routed.
type Friend struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	AddressRaw     string    `json:"address_raw"`
	AddressDisplay *string   `json:"address_display"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DisplayAddress returns the normalized address when geocoding has run,
// falling back to the raw address the user typed.
func (f *Friend) DisplayAddress() string {
	if f.AddressDisplay != nil && *f.AddressDisplay != "" {
		return *f.AddressDisplay
	}

	return f.AddressRaw
}

// HasCoordinates reports whether the friend has been geocoded. Zero values
// count as missing since (0, 0) is never a real home address here.
func (f *Friend) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil && *f.Latitude != 0 && *f.Longitude != 0
}
