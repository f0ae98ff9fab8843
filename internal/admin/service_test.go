package admin_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NihalDR/Lingam-Aabharanam/internal/admin"
	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

func newTestService(t *testing.T) (*admin.Service, *repository.ProductRepository, *repository.AppointmentRepository, *repository.TestimonialRepository) {
	t.Helper()
	store := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.True(t, store.Available())
	t.Cleanup(store.Close)

	products := repository.NewProductRepository(store)
	appointments := repository.NewAppointmentRepository(store)
	testimonials := repository.NewTestimonialRepository(store)
	return admin.NewService(store, products, appointments, testimonials), products, appointments, testimonials
}

func TestStatsOverSeededData(t *testing.T) {
	svc, _, appointments, testimonials := newTestService(t)

	_, err := appointments.Create(model.AppointmentInput{
		Name:    "Priya Nair",
		Email:   "priya@example.com",
		Phone:   "+91 98765 43210",
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Time:    "10:00",
		Purpose: model.PurposeGeneralViewing,
	})
	require.NoError(t, err)
	testimonials.Add(model.TestimonialInput{CustomerName: "Meera S.", Content: "Lovely work.", Rating: 4})

	stats := svc.Stats()
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 3, stats.FeaturedProducts)
	assert.Equal(t, 1, stats.TotalAppointments)
	assert.Equal(t, 1, stats.RecentAppointments)
	assert.Equal(t, 4, stats.TotalTestimonials)
	assert.Equal(t, 1, stats.PendingTestimonials)
	// the seeded catalog entries predate the recency window
	assert.Equal(t, 0, stats.RecentProducts)
}

func TestRecentActivityMergesAndTruncates(t *testing.T) {
	svc, products, appointments, _ := newTestService(t)

	for i := 0; i < 7; i++ {
		_, err := products.Create(model.ProductInput{
			Name:        "Silver Diya",
			Price:       40,
			Description: "Hand-finished oil lamp.",
			Category:    model.CategoryIdol,
		})
		require.NoError(t, err)
	}
	for i := 0; i < 7; i++ {
		_, err := appointments.Create(model.AppointmentInput{
			Name:    "Priya Nair",
			Email:   "priya@example.com",
			Phone:   "+91 98765 43210",
			Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Time:    "10:00",
			Purpose: model.PurposeGeneralViewing,
		})
		require.NoError(t, err)
	}

	activities := svc.RecentActivity()
	require.Len(t, activities, 10)

	counts := make(map[string]int)
	for _, a := range activities {
		counts[a.Type]++
	}
	// five per source survive the merge, testimonials are squeezed out by
	// the newer entries
	assert.Equal(t, 5, counts["product"])
	assert.Equal(t, 5, counts["appointment"])
	assert.Equal(t, 0, counts["testimonial"])

	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].Timestamp.After(activities[i-1].Timestamp))
	}
}

func TestRecentActivityIncludesSeeds(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	activities := svc.RecentActivity()
	// 4 seeded products plus 3 seeded testimonials, no appointments
	require.Len(t, activities, 7)

	counts := make(map[string]int)
	for _, a := range activities {
		counts[a.Type]++
	}
	assert.Equal(t, 4, counts["product"])
	assert.Equal(t, 3, counts["testimonial"])
}

func TestSystemHealth(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	health := svc.SystemHealth()
	assert.True(t, health.Database)
	assert.True(t, health.Products)
	assert.True(t, health.Appointments)
	assert.True(t, health.Testimonials)
}

func TestSystemHealthDegradedStore(t *testing.T) {
	// opening on a directory fails, leaving a degraded store
	store := storage.Open(t.TempDir())
	require.False(t, store.Available())

	svc := admin.NewService(store,
		repository.NewProductRepository(store),
		repository.NewAppointmentRepository(store),
		repository.NewTestimonialRepository(store),
	)

	health := svc.SystemHealth()
	assert.False(t, health.Database)
	assert.True(t, health.Products)
	assert.True(t, health.Appointments)
	assert.True(t, health.Testimonials)
}

func TestBulkUpdateProductsPassThrough(t *testing.T) {
	svc, products, _, _ := newTestService(t)

	featured := false
	require.True(t, svc.BulkUpdateProducts([]string{"rama-darbar-001"}, &featured, nil))

	got := products.GetByID("rama-darbar-001")
	require.NotNil(t, got)
	assert.False(t, got.Featured)
}
