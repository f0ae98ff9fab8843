package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

const testimonialsKey = "lingam-testimonials"

// TestimonialRepository provides moderated access to customer reviews.
// The collection is held in memory and mirrored to storage on every
// mutation; the constructor seeds the protected default entries when
// storage is empty or unreadable.
type TestimonialRepository struct {
	store *storage.Store
	mu    sync.Mutex
	items []model.Testimonial
}

func NewTestimonialRepository(store *storage.Store) *TestimonialRepository {
	r := &TestimonialRepository{store: store}
	r.items = storage.Read[model.Testimonial](store, testimonialsKey)
	if len(r.items) == 0 {
		r.items = defaultTestimonials()
		storage.Write(store, testimonialsKey, r.items)
	}
	return r
}

func (r *TestimonialRepository) save() {
	storage.Write(r.store, testimonialsKey, r.items)
}

func (r *TestimonialRepository) copyOf(filter func(model.Testimonial) bool) []model.Testimonial {
	var out []model.Testimonial
	for _, t := range r.items {
		if filter(t) {
			out = append(out, t)
		}
	}
	return out
}

// ListAll returns every testimonial, including unapproved ones
func (r *TestimonialRepository) ListAll() []model.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(func(model.Testimonial) bool { return true })
}

// ListApproved returns the testimonials that passed moderation
func (r *TestimonialRepository) ListApproved() []model.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(func(t model.Testimonial) bool { return t.IsApproved })
}

// ListHomepage returns the approved testimonials pinned to the homepage
func (r *TestimonialRepository) ListHomepage() []model.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(func(t model.Testimonial) bool { return t.IsApproved && t.ShowOnHomepage })
}

// Add stores a new testimonial. New entries always start unapproved and
// off the homepage; an admin must approve them before they are shown.
func (r *TestimonialRepository) Add(in model.TestimonialInput) *model.Testimonial {
	testimonial := model.Testimonial{
		ID:             uuid.NewString(),
		CustomerName:   in.CustomerName,
		Content:        in.Content,
		Rating:         in.Rating,
		Image:          in.Image,
		Date:           time.Now(),
		IsApproved:     false,
		ShowOnHomepage: false,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, testimonial)
	r.save()
	return &testimonial
}

// ToggleApproval flips the approval flag of the testimonial with the
// given id. Revoking approval also removes the entry from the homepage.
// Returns nil when no such testimonial exists.
func (r *TestimonialRepository) ToggleApproval(id string) *model.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].IsApproved = !r.items[i].IsApproved
		if !r.items[i].IsApproved {
			r.items[i].ShowOnHomepage = false
		}
		r.save()
		updated := r.items[i]
		return &updated
	}
	return nil
}

// ToggleHomepageDisplay flips the homepage flag of the testimonial with
// the given id. Only approved testimonials can be shown on the homepage;
// for an unapproved entry the call is a no-op that still returns the
// unchanged record. Returns nil when no such testimonial exists.
func (r *TestimonialRepository) ToggleHomepageDisplay(id string) *model.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if r.items[i].IsApproved {
			r.items[i].ShowOnHomepage = !r.items[i].ShowOnHomepage
			r.save()
		}
		current := r.items[i]
		return &current
	}
	return nil
}

// Delete removes the testimonial with the given id. The seeded default
// entries are protected and cannot be deleted.
func (r *TestimonialRepository) Delete(id string) bool {
	if protectedTestimonialIDs[id] {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.items[:0:0]
	for _, t := range r.items {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(r.items) {
		return false
	}
	r.items = filtered
	r.save()
	return true
}

// ClearAll resets the collection to the seeded defaults
func (r *TestimonialRepository) ClearAll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = defaultTestimonials()
	r.save()
	return true
}
