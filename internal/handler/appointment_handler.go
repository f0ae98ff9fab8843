package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/notify"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

const slotDateLayout = "2006-01-02"

type AppointmentHandler struct {
	repo *repository.AppointmentRepository
	info notify.StoreInfo
}

func NewAppointmentHandler(repo *repository.AppointmentRepository, info notify.StoreInfo) *AppointmentHandler {
	return &AppointmentHandler{repo: repo, info: info}
}

// AppointmentRequest defines the structure for booking requests. The date
// is accepted as either a calendar day ("2006-01-02") or RFC3339.
type AppointmentRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Purpose string `json:"purpose"`
	Message string `json:"message"`
}

func parseAppointmentDate(value string) (time.Time, bool) {
	if t, err := time.Parse(slotDateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ListAppointments handles retrieving all bookings, most recent first
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	log := logger.FromContext(c)

	appointments := h.repo.List()
	prometheus.RecordAppointmentOperation("list")
	log.Info("Appointments retrieved", zap.Int("count", len(appointments)))
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return c.JSON(http.StatusOK, appointments)
}

// GetAppointment handles retrieving a single booking by ID
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	appointment := h.repo.GetByID(id)
	if appointment == nil {
		log.Warn("Appointment not found", zap.String("appointment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Appointment not found"})
	}

	prometheus.RecordAppointmentOperation("get")
	return c.JSON(http.StatusOK, appointment)
}

// CreateAppointment books a store visit and returns the booking together
// with the pre-filled WhatsApp confirmation link
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	log := logger.FromContext(c)

	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var date time.Time
	if req.Date != "" {
		parsed, ok := parseAppointmentDate(req.Date)
		if !ok {
			log.Warn("Invalid appointment date", zap.String("date", req.Date))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD or RFC3339"})
		}
		date = parsed
	}

	appointment, err := h.repo.Create(model.AppointmentInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    date,
		Time:    req.Time,
		Purpose: model.AppointmentPurpose(req.Purpose),
		Message: req.Message,
	})
	if err != nil {
		if repository.IsValidation(err) {
			log.Warn("Appointment validation failed", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to create appointment", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create appointment"})
	}

	prometheus.RecordAppointmentOperation("create")
	log.Info("Appointment created",
		zap.String("appointment_id", appointment.ID),
		zap.String("slot", appointment.Time))

	whatsappURL := notify.Link(h.info.WhatsAppNumber, notify.AppointmentMessage(*appointment))
	return c.JSON(http.StatusCreated, echo.Map{
		"appointment":  appointment,
		"whatsapp_url": whatsappURL,
	})
}

// StatusRequest defines the structure for status updates
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateAppointmentStatus overwrites the booking status
func (h *AppointmentHandler) UpdateAppointmentStatus(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("appointment_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	status := model.AppointmentStatus(req.Status)
	switch status {
	case model.AppointmentPending, model.AppointmentConfirmed,
		model.AppointmentCompleted, model.AppointmentCancelled:
	default:
		log.Warn("Invalid appointment status", zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	appointment := h.repo.UpdateStatus(id, status)
	if appointment == nil {
		log.Warn("Appointment not found for status update", zap.String("appointment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Appointment not found"})
	}

	prometheus.RecordAppointmentOperation("update_status")
	log.Info("Appointment status updated",
		zap.String("appointment_id", id),
		zap.String("status", string(status)))
	return c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes a booking
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !h.repo.Delete(id) {
		log.Warn("Appointment not found for deletion", zap.String("appointment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Appointment not found"})
	}

	prometheus.RecordAppointmentOperation("delete")
	log.Info("Appointment deleted", zap.String("appointment_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment deleted successfully"})
}

// AvailableSlots returns the free time slots for the requested day
func (h *AppointmentHandler) AvailableSlots(c echo.Context) error {
	log := logger.FromContext(c)

	dateParam := c.QueryParam("date")
	date, ok := parseAppointmentDate(dateParam)
	if !ok {
		log.Warn("Invalid slot query date", zap.String("date", dateParam))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD or RFC3339"})
	}

	slots := h.repo.AvailableSlots(date)
	prometheus.SlotQueriesCounter.Inc()
	log.Info("Slot availability computed",
		zap.String("date", date.UTC().Format(slotDateLayout)),
		zap.Int("available", len(slots)))
	return c.JSON(http.StatusOK, echo.Map{
		"date":  date.UTC().Format(slotDateLayout),
		"slots": slots,
	})
}
