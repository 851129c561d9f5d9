package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups places, e.g. "카페" or "회의실".
// PlacesCount is a read-time aggregate, populated only by list queries.
type Category struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	PlacesCount int64     `json:"places_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
