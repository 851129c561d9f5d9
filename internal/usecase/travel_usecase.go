package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Per-item error taxonomy. The messages are surfaced verbatim to end users.
const (
	ErrorCodeMissingCoordinates = "missing_coordinates"
	ErrorCodeRoutingUnavailable = "routing_unavailable"

	MessageMissingCoordinates = "좌표가 설정되지 않았습니다."
	MessageRoutingUnavailable = "경로를 계산할 수 없습니다."
)

// TravelOrigin is a read-only routing snapshot of a friend. Nil or zero
// coordinates mean the friend was never geocoded.
type TravelOrigin struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// HasCoordinates reports whether the origin can be routed.
func (o TravelOrigin) HasCoordinates() bool {
	return o.Latitude != nil && o.Longitude != nil && *o.Latitude != 0 && *o.Longitude != 0
}

// TravelDestination is a candidate meeting venue. ID is zero for demo-mode
// destinations that never touched the database.
type TravelDestination struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// HasCoordinates reports whether the destination can be routed to.
func (d TravelDestination) HasCoordinates() bool {
	return d.Latitude != 0 && d.Longitude != 0
}

// TravelItem is the per-origin outcome of one calculation. It holds either
// route values or an error code with its user-facing message, never both.
// Items are response-time values, never persisted.
type TravelItem struct {
	OriginID    uuid.UUID   `json:"originId"`
	OriginName  string      `json:"originName"`
	FromAddress string      `json:"fromAddress"`
	DistanceKm  *float64    `json:"distanceKm"`
	DurationMin *float64    `json:"durationMin"`
	Path        []orb.Point `json:"path"`
	ErrorCode   string      `json:"errorCode,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// Succeeded reports whether the item carries a resolved route.
func (item TravelItem) Succeeded() bool {
	return item.ErrorCode == "" && item.DurationMin != nil
}

// DestinationSummary aggregates all per-origin items for one destination.
// SuccessCount lets callers tell "average 0 because nobody could be routed"
// apart from a genuine zero.
type DestinationSummary struct {
	Destination    TravelDestination `json:"destination"`
	Items          []TravelItem      `json:"items"`
	TotalMinutes   float64           `json:"totalMinutes"`
	AverageMinutes float64           `json:"averageMinutes"`
	SuccessCount   int               `json:"successCount"`
}

// ComputeTravelTimesInput selects stored friends and candidate places.
type ComputeTravelTimesInput struct {
	UserID    uuid.UUID
	FriendIDs []uuid.UUID
	PlaceIDs  []uuid.UUID
}

// TravelUsecase defines the travel-time aggregation engine's interface.
type TravelUsecase interface {
	// ComputeTravelTimes loads the selected friends and places, computes every
	// (friend, place) pair and returns one summary per place, ranked ascending
	// by average duration.
	ComputeTravelTimes(ctx context.Context, input ComputeTravelTimesInput) ([]*DestinationSummary, error)

	// Rank computes summaries for inline origins and destinations without any
	// repository access; the demo mode and ComputeTravelTimes both run on it.
	Rank(ctx context.Context, origins []TravelOrigin, destinations []TravelDestination) ([]*DestinationSummary, error)
}
