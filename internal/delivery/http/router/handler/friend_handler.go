package handler

import (
	"net/http"

	"moim/internal/delivery/http/response"
	"moim/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FriendHandler holds dependencies for friend-related handlers.
type FriendHandler struct {
	uc usecase.FriendUsecase
}

// NewFriendHandler is the constructor for FriendHandler, injected by Fx.
func NewFriendHandler(uc usecase.FriendUsecase) *FriendHandler {
	return &FriendHandler{uc: uc}
}

type createFriendRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type updateFriendRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// List returns all friends of the current user, newest first.
func (h *FriendHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "")
}

// Create registers a new friend.
func (h *FriendHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createFriendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend input")
	}

	friend, err := h.uc.CreateFriend(c.Request().Context(), usecase.CreateFriendInput{
		UserID:    userID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, friend, "")
}

// Update applies a partial update to a friend.
func (h *FriendHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateFriendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend input")
	}

	friend, err := h.uc.UpdateFriend(c.Request().Context(), usecase.UpdateFriendInput{
		UserID:    userID,
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friend, "")
}

// Delete removes a friend.
func (h *FriendHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFriend(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true}, "")
}
