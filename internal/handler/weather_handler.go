package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/service"
)

// WeatherHandler handles weather endpoints.
type WeatherHandler struct {
	weatherService service.WeatherService
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(weatherService service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// WeatherResponse wraps a weather snapshot.
type WeatherResponse struct {
	Success bool                   `json:"success"`
	Data    *model.WeatherSnapshot `json:"data"`
}

// Current godoc
// @Summary Current weather and 5-day forecast for a district
// @Tags weather
// @Produce json
// @Security BearerAuth
// @Param state_code path int true "State code"
// @Param district_code path int true "District code"
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /weather/{state_code}/{district_code} [get]
func (h *WeatherHandler) Current(c echo.Context) error {
	stateCode, err := strconv.Atoi(c.Param("state_code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Success: false,
			Error:   "state_code must be an integer",
			Code:    "INVALID_STATE_CODE",
		})
	}
	districtCode, err := strconv.Atoi(c.Param("district_code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Success: false,
			Error:   "district_code must be an integer",
			Code:    "INVALID_DISTRICT_CODE",
		})
	}

	snapshot, err := h.weatherService.Current(c.Request().Context(), stateCode, districtCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, WeatherResponse{
		Success: true,
		Data:    snapshot,
	})
}
