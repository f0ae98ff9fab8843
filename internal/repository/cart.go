package repository

import (
	"sync"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
)

const cartKey = "lingam-cart"

// CartRepository holds the shopping cart. The cart shares the storage
// substrate with the other collections but has no defaults and no
// moderation; it is plain session state.
type CartRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewCartRepository(store *storage.Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) load() []model.CartItem {
	return storage.Read[model.CartItem](r.store, cartKey)
}

// Items returns the cart contents in insertion order
func (r *CartRepository) Items() []model.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add puts an item in the cart, merging by id: adding an item that is
// already present increases its quantity instead.
func (r *CartRepository) Add(item model.CartItem) []model.CartItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	storage.Write(r.store, cartKey, items)
	return items
}

// SetQuantity sets the quantity of the item with the given id. Quantities
// below one are rejected; use Remove to take an item out of the cart.
func (r *CartRepository) SetQuantity(id string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			storage.Write(r.store, cartKey, items)
			return true
		}
	}
	return false
}

// Remove takes the item with the given id out of the cart
func (r *CartRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	filtered := items[:0:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return false
	}
	storage.Write(r.store, cartKey, filtered)
	return true
}

// Clear empties the cart
func (r *CartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	storage.Write(r.store, cartKey, []model.CartItem{})
}

// Subtotal returns the price sum over all items and quantities
func (r *CartRepository) Subtotal() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, item := range r.load() {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
