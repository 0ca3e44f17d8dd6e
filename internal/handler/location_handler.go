package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/service"
)

// LocationHandler handles state and district catalog endpoints.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// StatesResponse lists all states with district counts.
type StatesResponse struct {
	Success bool                   `json:"success"`
	Data    []service.StateSummary `json:"data"`
	Count   int                    `json:"count"`
}

// DistrictsResponse lists the districts of one state.
type DistrictsResponse struct {
	Success bool             `json:"success"`
	Data    []model.District `json:"data"`
	Count   int              `json:"count"`
}

// States godoc
// @Summary List all states
// @Tags location
// @Produce json
// @Success 200 {object} StatesResponse
// @Router /location/states [get]
func (h *LocationHandler) States(c echo.Context) error {
	states := h.locationService.ListStates(c.Request().Context())
	return c.JSON(http.StatusOK, StatesResponse{
		Success: true,
		Data:    states,
		Count:   len(states),
	})
}

// Districts godoc
// @Summary List districts of a state
// @Tags location
// @Produce json
// @Param state_code path int true "State code"
// @Success 200 {object} DistrictsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /location/districts/{state_code} [get]
func (h *LocationHandler) Districts(c echo.Context) error {
	stateCode, err := strconv.Atoi(c.Param("state_code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Success: false,
			Error:   "state_code must be an integer",
			Code:    "INVALID_STATE_CODE",
		})
	}

	districts := h.locationService.ListDistricts(c.Request().Context(), stateCode)
	return c.JSON(http.StatusOK, DistrictsResponse{
		Success: true,
		Data:    districts,
		Count:   len(districts),
	})
}
