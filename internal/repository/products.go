package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

const productsKey = "admin_products"

// ProductRepository provides CRUD access to the product catalog. Every
// operation reads the whole collection, mutates an in-memory copy and
// writes the whole collection back; the mutex keeps that read-modify-write
// cycle exclusive within the process.
type ProductRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewProductRepository(store *storage.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// load returns the stored catalog, seeding the default products when the
// collection is empty. When the stored collection is missing some of the
// default ids and holds fewer entries than the default set, the defaults
// are merged back in and persisted. This reconciliation survives partial
// or corrupted storage, but it also resurrects intentionally deleted
// defaults; callers that need a truly empty catalog must use ClearAll and
// avoid re-reading.
func (r *ProductRepository) load() []model.Product {
	products := storage.Read[model.Product](r.store, productsKey)
	defaults := defaultProducts()

	if len(products) == 0 {
		storage.Write(r.store, productsKey, defaults)
		return defaults
	}

	stored := make(map[string]bool, len(products))
	for _, p := range products {
		stored[p.ID] = true
	}
	hasDefaults := true
	for _, d := range defaults {
		if !stored[d.ID] {
			hasDefaults = false
			break
		}
	}

	if !hasDefaults && len(products) < len(defaults) {
		merged := defaults
		defaultIDs := make(map[string]bool, len(defaults))
		for _, d := range defaults {
			defaultIDs[d.ID] = true
		}
		for _, p := range products {
			if !defaultIDs[p.ID] {
				merged = append(merged, p)
			}
		}
		storage.Write(r.store, productsKey, merged)
		return merged
	}

	return products
}

// List returns all products
func (r *ProductRepository) List() []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID returns the product with the given id, or nil
func (r *ProductRepository) GetByID(id string) *model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// GetByCategory returns all products in the given category
func (r *ProductRepository) GetByCategory(category model.ProductCategory) []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Product
	for _, p := range r.load() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetFeatured returns all featured products
func (r *ProductRepository) GetFeatured() []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Product
	for _, p := range r.load() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Create validates the input and appends a new product to the catalog.
// Name, description and a positive price are required.
func (r *ProductRepository) Create(in model.ProductInput) (*model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "product name is required"}
	}
	if in.Price <= 0 {
		return nil, &ValidationError{Field: "price", Reason: "valid product price is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "product description is required"}
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	product := model.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Subcategory: strings.TrimSpace(in.Subcategory),
		Price:       in.Price,
		SalePrice:   in.SalePrice,
		Description: strings.TrimSpace(in.Description),
		Details:     strings.TrimSpace(in.Details),
		Images:      images,
		Weight:      strings.TrimSpace(in.Weight),
		Material:    strings.TrimSpace(in.Material),
		Dimensions:  strings.TrimSpace(in.Dimensions),
		InStock:     in.InStock,
		Featured:    in.Featured,
		CreatedAt:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	products := append(r.load(), product)
	storage.Write(r.store, productsKey, products)
	return &product, nil
}

// Update applies the non-nil fields of patch to the product with the given
// id and returns the updated product, or nil when no such product exists.
func (r *ProductRepository) Update(id string, patch model.ProductPatch) *model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	p := &products[idx]
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		p.Subcategory = strings.TrimSpace(*patch.Subcategory)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		// a zero or negative sale price clears the discount
		if *patch.SalePrice > 0 {
			v := *patch.SalePrice
			p.SalePrice = &v
		} else {
			p.SalePrice = nil
		}
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Details != nil {
		p.Details = strings.TrimSpace(*patch.Details)
	}
	if patch.Images != nil {
		images := *patch.Images
		if images == nil {
			images = []string{}
		}
		p.Images = images
	}
	if patch.Weight != nil {
		p.Weight = strings.TrimSpace(*patch.Weight)
	}
	if patch.Material != nil {
		p.Material = strings.TrimSpace(*patch.Material)
	}
	if patch.Dimensions != nil {
		p.Dimensions = strings.TrimSpace(*patch.Dimensions)
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}

	storage.Write(r.store, productsKey, products)
	updated := *p
	return &updated
}

// Delete removes the product with the given id and reports whether a
// product was removed.
func (r *ProductRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	filtered := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return false
	}
	storage.Write(r.store, productsKey, filtered)
	return true
}

// ClearAll drops the stored catalog entirely. The next read re-seeds the
// defaults.
func (r *ProductRepository) ClearAll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(productsKey)
}

// BulkUpdate applies the featured and/or inStock overrides to every
// product whose id is in ids. The collection is persisted once, and only
// when at least one product changed. It reports whether the write (or the
// no-op) succeeded.
func (r *ProductRepository) BulkUpdate(ids []string, featured, inStock *bool) bool {
	if featured == nil && inStock == nil {
		return true
	}

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	changed := false
	for i := range products {
		if !idSet[products[i].ID] {
			continue
		}
		if featured != nil {
			products[i].Featured = *featured
			changed = true
		}
		if inStock != nil {
			products[i].InStock = *inStock
			changed = true
		}
	}

	if !changed {
		return true
	}
	return storage.Write(r.store, productsKey, products)
}
