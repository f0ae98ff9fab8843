package model

import "time"

// AppointmentStatus is the lifecycle state of a booking
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// AppointmentPurpose is the reason for the store visit
type AppointmentPurpose string

const (
	PurposeGeneralViewing AppointmentPurpose = "general-viewing"
	PurposeSpecificItem   AppointmentPurpose = "specific-item"
	PurposeCustomOrder    AppointmentPurpose = "custom-order"
)

// Appointment represents a store visit booking
type Appointment struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Date      time.Time          `json:"date"`
	Time      string             `json:"time"` // slot label, e.g. "10:00"
	Purpose   AppointmentPurpose `json:"purpose"`
	Message   string             `json:"message,omitempty"`
	Status    AppointmentStatus  `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// AppointmentInput carries the caller-supplied fields for a new booking
type AppointmentInput struct {
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Phone   string             `json:"phone"`
	Date    time.Time          `json:"date"`
	Time    string             `json:"time"`
	Purpose AppointmentPurpose `json:"purpose"`
	Message string             `json:"message,omitempty"`
}
