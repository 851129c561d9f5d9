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

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc usecase.PlaceUsecase
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase) *PlaceHandler {
	return &PlaceHandler{uc: uc}
}

type createPlaceRequest struct {
	Name       string     `json:"name" validate:"required"`
	Address    string     `json:"address" validate:"required"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	CategoryID *uuid.UUID `json:"category_id"`
}

type updatePlaceRequest struct {
	Name          *string    `json:"name"`
	Address       *string    `json:"address"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	CategoryID    *uuid.UUID `json:"category_id"`
	ClearCategory bool       `json:"clear_category"`
}

// List returns the user's places, optionally filtered by ?category_id=.
func (h *PlaceHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var categoryID *uuid.UUID
	if raw := c.QueryParam("category_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid category_id parameter")
		}
		categoryID = &parsed
	}

	places, err := h.uc.ListPlaces(c.Request().Context(), userID, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "")
}

// Create registers a new candidate venue.
func (h *PlaceHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	place, err := h.uc.CreatePlace(c.Request().Context(), usecase.CreatePlaceInput{
		UserID:     userID,
		Name:       req.Name,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, place, "")
}

// Update applies a partial update to a place.
func (h *PlaceHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	place, err := h.uc.UpdatePlace(c.Request().Context(), usecase.UpdatePlaceInput{
		UserID:        userID,
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, place, "")
}

// Delete removes a place.
func (h *PlaceHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlace(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true}, "")
}
