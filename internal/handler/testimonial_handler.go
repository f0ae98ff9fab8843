package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

type TestimonialHandler struct {
	repo *repository.TestimonialRepository
}

func NewTestimonialHandler(repo *repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

func testimonialList(items []model.Testimonial) []model.Testimonial {
	if items == nil {
		return []model.Testimonial{}
	}
	return items
}

// ListTestimonials returns every testimonial, including unapproved ones
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	items := h.repo.ListAll()
	prometheus.RecordTestimonialOperation("list")
	logger.FromContext(c).Info("Testimonials retrieved", zap.Int("count", len(items)))
	return c.JSON(http.StatusOK, testimonialList(items))
}

// ListApproved returns the publicly visible testimonials
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	items := h.repo.ListApproved()
	prometheus.RecordTestimonialOperation("list_approved")
	return c.JSON(http.StatusOK, testimonialList(items))
}

// ListHomepage returns the approved testimonials pinned to the homepage
func (h *TestimonialHandler) ListHomepage(c echo.Context) error {
	items := h.repo.ListHomepage()
	prometheus.RecordTestimonialOperation("list_homepage")
	return c.JSON(http.StatusOK, testimonialList(items))
}

// CreateTestimonial submits a new review for moderation
func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	log := logger.FromContext(c)

	var in model.TestimonialInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.Content) == "" {
		log.Warn("Testimonial validation failed")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerName and content are required"})
	}

	testimonial := h.repo.Add(in)
	prometheus.RecordTestimonialOperation("create")
	log.Info("Testimonial submitted for moderation",
		zap.String("testimonial_id", testimonial.ID),
		zap.String("customer", testimonial.CustomerName))
	return c.JSON(http.StatusCreated, testimonial)
}

// ToggleApproval flips the moderation flag
func (h *TestimonialHandler) ToggleApproval(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	testimonial := h.repo.ToggleApproval(id)
	if testimonial == nil {
		log.Warn("Testimonial not found", zap.String("testimonial_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Testimonial not found"})
	}

	prometheus.RecordTestimonialOperation("toggle_approval")
	log.Info("Testimonial approval toggled",
		zap.String("testimonial_id", id),
		zap.Bool("approved", testimonial.IsApproved))
	return c.JSON(http.StatusOK, testimonial)
}

// ToggleHomepage flips the homepage flag for an approved testimonial
func (h *TestimonialHandler) ToggleHomepage(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	testimonial := h.repo.ToggleHomepageDisplay(id)
	if testimonial == nil {
		log.Warn("Testimonial not found", zap.String("testimonial_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Testimonial not found"})
	}

	prometheus.RecordTestimonialOperation("toggle_homepage")
	log.Info("Testimonial homepage display toggled",
		zap.String("testimonial_id", id),
		zap.Bool("show_on_homepage", testimonial.ShowOnHomepage))
	return c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial removes a review; the seeded defaults are protected
func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !h.repo.Delete(id) {
		log.Warn("Testimonial not deleted (missing or protected)",
			zap.String("testimonial_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Testimonial not found or protected"})
	}

	prometheus.RecordTestimonialOperation("delete")
	log.Info("Testimonial deleted", zap.String("testimonial_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Testimonial deleted successfully"})
}

// ClearTestimonials resets the collection to the seeded defaults
func (h *TestimonialHandler) ClearTestimonials(c echo.Context) error {
	h.repo.ClearAll()
	prometheus.RecordTestimonialOperation("clear")
	logger.FromContext(c).Info("Testimonials reset to defaults")
	return c.JSON(http.StatusOK, echo.Map{"cleared": true})
}
