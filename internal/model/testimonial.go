package model

import "time"

// Testimonial represents a customer review. A testimonial passes the
// moderation gate (IsApproved) before it may appear publicly, and only
// approved testimonials may be pinned to the homepage.
type Testimonial struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	Content        string    `json:"content"`
	Rating         float64   `json:"rating"`
	Image          string    `json:"image,omitempty"`
	Date           time.Time `json:"date"`
	IsApproved     bool      `json:"isApproved"`
	ShowOnHomepage bool      `json:"showOnHomepage"`
}

// TestimonialInput carries the caller-supplied fields for a new testimonial
type TestimonialInput struct {
	CustomerName string  `json:"customerName"`
	Content      string  `json:"content"`
	Rating       float64 `json:"rating"`
	Image        string  `json:"image,omitempty"`
}
