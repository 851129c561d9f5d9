package handler

import (
	"net/http"

	"moim/internal/delivery/http/response"
	"moim/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeocodeHandler holds dependencies for address resolution handlers.
type GeocodeHandler struct {
	uc usecase.GeocodeUsecase
}

// NewGeocodeHandler is the constructor for GeocodeHandler, injected by Fx.
func NewGeocodeHandler(uc usecase.GeocodeUsecase) *GeocodeHandler {
	return &GeocodeHandler{uc: uc}
}

// Geocode resolves ?address= to coordinates.
func (h *GeocodeHandler) Geocode(c echo.Context) error {
	output, err := h.uc.Geocode(c.Request().Context(), c.QueryParam("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// SearchPlace resolves ?query= (address or keyword) to coordinates.
func (h *GeocodeHandler) SearchPlace(c echo.Context) error {
	output, err := h.uc.SearchPlace(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
