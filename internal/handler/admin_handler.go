package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/admin"
	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

type AdminHandler struct {
	svc *admin.Service
}

func NewAdminHandler(svc *admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GetStats returns the dashboard counters
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats := h.svc.Stats()
	logger.FromContext(c).Info("Admin stats computed",
		zap.Int("products", stats.TotalProducts),
		zap.Int("appointments", stats.TotalAppointments),
		zap.Int("testimonials", stats.TotalTestimonials))
	return c.JSON(http.StatusOK, stats)
}

// GetRecentActivity returns the merged activity feed
func (h *AdminHandler) GetRecentActivity(c echo.Context) error {
	activity := h.svc.RecentActivity()
	if activity == nil {
		activity = []model.RecentActivity{}
	}
	return c.JSON(http.StatusOK, activity)
}

// BulkUpdateRequest defines the structure for bulk product overrides
type BulkUpdateRequest struct {
	ProductIDs []string `json:"productIds" validate:"required"`
	Featured   *bool    `json:"featured,omitempty"`
	InStock    *bool    `json:"inStock,omitempty"`
}

// BulkUpdateProducts applies featured/inStock overrides to a set of
// products in one write
func (h *AdminHandler) BulkUpdateProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var req BulkUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if len(req.ProductIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "productIds is required"})
	}

	ok := h.svc.BulkUpdateProducts(req.ProductIDs, req.Featured, req.InStock)
	prometheus.RecordProductOperation("bulk_update")
	log.Info("Bulk product update applied",
		zap.Int("products", len(req.ProductIDs)),
		zap.Bool("persisted", ok))
	return c.JSON(http.StatusOK, echo.Map{"success": ok})
}

// SystemHealth reports storage and per-repository reachability
func (h *AdminHandler) SystemHealth(c echo.Context) error {
	health := h.svc.SystemHealth()
	status := http.StatusOK
	if !health.Database {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, health)
}
