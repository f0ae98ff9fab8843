package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

const appointmentsKey = "admin_appointments"

// dateLayout is the calendar-day form used to match bookings to a day
const dateLayout = "2006-01-02"

// timeSlots is the fixed daily schedule: 16 half-hour slots from 10:00
// to 17:30 inclusive.
var timeSlots = []string{
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
}

// TimeSlots returns a copy of the fixed daily slot catalog
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// AppointmentRepository provides CRUD access to store visit bookings plus
// slot-availability computation.
type AppointmentRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewAppointmentRepository(store *storage.Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

func (r *AppointmentRepository) load() []model.Appointment {
	return storage.Read[model.Appointment](r.store, appointmentsKey)
}

// List returns all appointments, most recently created first
func (r *AppointmentRepository) List() []model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments := r.load()
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
	return appointments
}

// GetByID returns the appointment with the given id, or nil
func (r *AppointmentRepository) GetByID(id string) *model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.load() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// Create validates the input and stores a new pending appointment. The
// email is lowercased and all text fields are trimmed. The target slot is
// not checked for prior bookings, so two calls for the same date and time
// both succeed; AvailableSlots is advisory only.
func (r *AppointmentRepository) Create(in model.AppointmentInput) (*model.Appointment, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, &ValidationError{Field: "email", Reason: "email is required"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, &ValidationError{Field: "phone", Reason: "phone is required"}
	}
	if in.Date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "date is required"}
	}
	if strings.TrimSpace(in.Time) == "" {
		return nil, &ValidationError{Field: "time", Reason: "time is required"}
	}

	appointment := model.Appointment{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      in.Date,
		Time:      strings.TrimSpace(in.Time),
		Purpose:   in.Purpose,
		Message:   strings.TrimSpace(in.Message),
		Status:    model.AppointmentPending,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	appointments := append(r.load(), appointment)
	storage.Write(r.store, appointmentsKey, appointments)
	return &appointment, nil
}

// UpdateStatus overwrites the status of the appointment with the given id
// and returns the updated record, or nil when no such appointment exists.
func (r *AppointmentRepository) UpdateStatus(id string, status model.AppointmentStatus) *model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments := r.load()
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Status = status
			storage.Write(r.store, appointmentsKey, appointments)
			updated := appointments[i]
			return &updated
		}
	}
	return nil
}

// Delete removes the appointment with the given id and reports whether an
// appointment was removed.
func (r *AppointmentRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments := r.load()
	filtered := appointments[:0:0]
	for _, a := range appointments {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(appointments) {
		return false
	}
	storage.Write(r.store, appointmentsKey, filtered)
	return true
}

// AvailableSlots returns the slot catalog minus the times of non-cancelled
// appointments on the same UTC calendar day as date, preserving catalog
// order. There is no reservation hold between this call and Create, so a
// returned slot can still be taken by a competing booking.
func (r *AppointmentRepository) AvailableSlots(date time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := date.UTC().Format(dateLayout)
	booked := make(map[string]bool)
	for _, a := range r.load() {
		if a.Status == model.AppointmentCancelled {
			continue
		}
		if a.Date.UTC().Format(dateLayout) == day {
			booked[a.Time] = true
		}
	}

	available := make([]string, 0, len(timeSlots))
	for _, slot := range timeSlots {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available
}
