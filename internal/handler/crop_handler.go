package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/service"
)

// CropHandler handles crop recommendation endpoints.
type CropHandler struct {
	cropService service.CropService
}

// NewCropHandler creates a new crop handler.
func NewCropHandler(cropService service.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

// RecommendationsRequest carries the query parameters for a recommendation.
// Location fields are accepted for forward compatibility with a model that
// scores by district; only the season drives filtering today. A missing or
// unknown season id falls back to Kharif.
type RecommendationsRequest struct {
	SeasonID     int     `json:"season_id"`
	StateCode    int     `json:"state_code"`
	DistrictCode int     `json:"district_code"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// RecommendationsResponse lists recommended crops for a season.
type RecommendationsResponse struct {
	Success bool                `json:"success"`
	Data    []model.CropProfile `json:"data"`
	Count   int                 `json:"count"`
	Season  model.Season        `json:"season"`
}

// Recommendations godoc
// @Summary Recommend crops for a season
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecommendationsRequest true "Recommendation query"
// @Success 200 {object} RecommendationsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /crops/recommendations [post]
func (h *CropHandler) Recommendations(c echo.Context) error {
	var req RecommendationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Success: false,
			Error:   "invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Success: false,
			Error:   validationMessage(err),
			Code:    "VALIDATION_ERROR",
		})
	}

	crops, season := h.cropService.Recommend(c.Request().Context(), req.SeasonID)
	return c.JSON(http.StatusOK, RecommendationsResponse{
		Success: true,
		Data:    crops,
		Count:   len(crops),
		Season:  season,
	})
}
