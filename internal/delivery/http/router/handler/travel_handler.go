package handler

import (
	"net/http"

	"moim/internal/delivery/http/response"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TravelHandler holds dependencies for travel-time handlers.
type TravelHandler struct {
	uc usecase.TravelUsecase
}

// NewTravelHandler is the constructor for TravelHandler, injected by Fx.
func NewTravelHandler(uc usecase.TravelUsecase) *TravelHandler {
	return &TravelHandler{uc: uc}
}

// demoFriendRequest is an inline origin for the unauthenticated demo mode.
type demoFriendRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// demoPlaceRequest is the inline destination for the demo mode.
type demoPlaceRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type travelTimesRequest struct {
	FriendIDs []uuid.UUID `json:"friend_ids"`
	PlaceIDs  []uuid.UUID `json:"place_ids"`

	DemoFriends []demoFriendRequest `json:"demo_friends"`
	DemoPlace   *demoPlaceRequest   `json:"demo_place"`
}

func (r travelTimesRequest) isDemo() bool {
	return r.DemoPlace != nil || len(r.DemoFriends) > 0
}

// ComputeTravelTimes ranks the selected places by average travel time of the
// selected friends. The demo variant carries inline coordinates and needs no
// account; otherwise a valid access token is required.
func (h *TravelHandler) ComputeTravelTimes(c echo.Context) error {
	var req travelTimesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid travel-times input")
	}

	if req.isDemo() {
		return h.computeDemo(c, req)
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.uc.ComputeTravelTimes(c.Request().Context(), usecase.ComputeTravelTimesInput{
		UserID:    userID,
		FriendIDs: req.FriendIDs,
		PlaceIDs:  req.PlaceIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// One place keeps the original flat response shape.
	if len(summaries) == 1 {
		return response.Success(c, http.StatusOK, summaries[0], "")
	}

	return response.Success(c, http.StatusOK, summaries, "")
}

func (h *TravelHandler) computeDemo(c echo.Context, req travelTimesRequest) error {
	if req.DemoPlace == nil || len(req.DemoFriends) == 0 {
		return domainerrors.ErrSelectionRequired
	}

	origins := make([]usecase.TravelOrigin, 0, len(req.DemoFriends))
	for _, friend := range req.DemoFriends {
		origins = append(origins, usecase.TravelOrigin{
			ID:        uuid.New(),
			Name:      friend.Name,
			Address:   friend.Address,
			Latitude:  friend.Latitude,
			Longitude: friend.Longitude,
		})
	}

	destinations := []usecase.TravelDestination{{
		Name:      req.DemoPlace.Name,
		Latitude:  req.DemoPlace.Latitude,
		Longitude: req.DemoPlace.Longitude,
	}}

	summaries, err := h.uc.Rank(c.Request().Context(), origins, destinations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries[0], "")
}
