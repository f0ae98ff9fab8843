// Package admin composes read-only dashboard rollups from the product,
// appointment and testimonial repositories. It never writes except through
// the product repository's bulk path.
package admin

import (
	"fmt"
	"sort"
	"time"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

const (
	recentWindow      = 7 * 24 * time.Hour
	activityPerSource = 5
	activityLimit     = 10
)

type Service struct {
	store        *storage.Store
	products     *repository.ProductRepository
	appointments *repository.AppointmentRepository
	testimonials *repository.TestimonialRepository
}

func NewService(
	store *storage.Store,
	products *repository.ProductRepository,
	appointments *repository.AppointmentRepository,
	testimonials *repository.TestimonialRepository,
) *Service {
	return &Service{
		store:        store,
		products:     products,
		appointments: appointments,
		testimonials: testimonials,
	}
}

// Stats computes the dashboard counters from full collection reads
func (s *Service) Stats() model.AdminStats {
	products := s.products.List()
	appointments := s.appointments.List()
	testimonials := s.testimonials.ListAll()

	cutoff := time.Now().Add(-recentWindow)
	stats := model.AdminStats{
		TotalProducts:     len(products),
		TotalAppointments: len(appointments),
		TotalTestimonials: len(testimonials),
	}

	for _, p := range products {
		if p.CreatedAt.After(cutoff) {
			stats.RecentProducts++
		}
		if p.Featured {
			stats.FeaturedProducts++
		}
	}
	for _, a := range appointments {
		if a.CreatedAt.After(cutoff) {
			stats.RecentAppointments++
		}
	}
	for _, t := range testimonials {
		if !t.IsApproved {
			stats.PendingTestimonials++
		}
	}

	return stats
}

// RecentActivity merges the five most recent entries from each repository,
// re-sorts them by timestamp descending and truncates to ten.
func (s *Service) RecentActivity() []model.RecentActivity {
	var activities []model.RecentActivity

	products := s.products.List()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	for _, p := range firstN(products, activityPerSource) {
		activities = append(activities, model.RecentActivity{
			ID:          p.ID,
			Type:        "product",
			Title:       "New Product Added",
			Description: p.Name,
			Timestamp:   p.CreatedAt,
		})
	}

	// appointments are already sorted most recent first
	for _, a := range firstN(s.appointments.List(), activityPerSource) {
		activities = append(activities, model.RecentActivity{
			ID:          a.ID,
			Type:        "appointment",
			Title:       "New Appointment",
			Description: fmt.Sprintf("%s - %s", a.Name, a.Purpose),
			Timestamp:   a.CreatedAt,
		})
	}

	testimonials := s.testimonials.ListAll()
	sort.SliceStable(testimonials, func(i, j int) bool {
		return testimonials[i].Date.After(testimonials[j].Date)
	})
	for _, t := range firstN(testimonials, activityPerSource) {
		activities = append(activities, model.RecentActivity{
			ID:          t.ID,
			Type:        "testimonial",
			Title:       "New Testimonial",
			Description: t.CustomerName,
			Timestamp:   t.Date,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	return firstN(activities, activityLimit)
}

// SystemHealth probes storage with a sentinel write and touches each
// repository's list path, reporting per-subsystem reachability. There are
// no retries; a degraded store shows up as database=false with the
// repositories still answering from their empty-read fallbacks.
func (s *Service) SystemHealth() model.SystemHealth {
	health := model.SystemHealth{}
	health.Database = s.store.Probe()

	s.products.List()
	health.Products = true

	s.appointments.List()
	health.Appointments = true

	s.testimonials.ListAll()
	health.Testimonials = true

	return health
}

// BulkUpdateProducts passes the override set through to the product
// repository.
func (s *Service) BulkUpdateProducts(ids []string, featured, inStock *bool) bool {
	return s.products.BulkUpdate(ids, featured, inStock)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
