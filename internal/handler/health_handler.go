package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tyagianshu04/krishi-mitra/internal/catalog"
	"github.com/Tyagianshu04/krishi-mitra/internal/repository"
)

// HealthHandler reports service status and store counts.
type HealthHandler struct {
	users   repository.UserRepository
	catalog *catalog.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(users repository.UserRepository, cat *catalog.Store) *HealthHandler {
	return &HealthHandler{users: users, catalog: cat}
}

// HealthResponse reports liveness and store counts.
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	UsersCount     int64     `json:"users_count"`
	StatesCount    int       `json:"states_count"`
	DistrictsCount int       `json:"districts_count"`
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	usersCount, err := h.users.Count(c.Request().Context())
	if err != nil {
		// Degraded but alive; report zero rather than failing the probe.
		usersCount = 0
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC(),
		UsersCount:     usersCount,
		StatesCount:    h.catalog.StatesCount(),
		DistrictsCount: h.catalog.DistrictsCount(),
	})
}

// Root godoc
// @Summary API banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Krishi Mitra API",
		"version": "1.0.0",
		"status":  "running",
	})
}
