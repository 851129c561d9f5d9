package handler

import (
	"net/http"

	"moim/internal/delivery/http/response"
	"moim/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SeedHandler holds dependencies for the demo-data seeding handler.
type SeedHandler struct {
	uc usecase.SeedUsecase
}

// NewSeedHandler is the constructor for SeedHandler, injected by Fx.
func NewSeedHandler(uc usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed populates the current account with the demo dataset.
func (h *SeedHandler) Seed(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Seed(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
