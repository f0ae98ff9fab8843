package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

type HealthHandler struct {
	store *storage.Store
}

func NewHealthHandler(store *storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck handles the health check endpoint
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Health check requested")

	// Basic response
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Check the store if requested
	if c.QueryParam("check") == "store" {
		if !h.store.Probe() {
			response["status"] = "error"
			response["store_status"] = "error"
			return c.JSON(http.StatusInternalServerError, response)
		}
		response["store_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}

// Hello returns a simple welcome message
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Lingam Aabharanam Storefront API",
		"version": "1.0.0",
	})
}
