package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the connectivity probes the client screens use.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Server is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Test handles GET /api/test.
func (h *HealthHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Success:   true,
		Message:   "API is reachable",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
