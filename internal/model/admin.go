package model

import "time"

// AdminStats is a read-only rollup for the admin dashboard; it is computed
// on demand and never persisted.
type AdminStats struct {
	TotalProducts       int `json:"totalProducts"`
	TotalAppointments   int `json:"totalAppointments"`
	TotalTestimonials   int `json:"totalTestimonials"`
	RecentProducts      int `json:"recentProducts"`
	RecentAppointments  int `json:"recentAppointments"`
	FeaturedProducts    int `json:"featuredProducts"`
	PendingTestimonials int `json:"pendingTestimonials"`
}

// RecentActivity is a single entry in the admin activity feed
type RecentActivity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "product", "appointment" or "testimonial"
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// SystemHealth reports per-subsystem reachability
type SystemHealth struct {
	Database     bool `json:"database"`
	Products     bool `json:"products"`
	Appointments bool `json:"appointments"`
	Testimonials bool `json:"testimonials"`
}
