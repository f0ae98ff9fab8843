package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
)

func TestCartAddMergesByID(t *testing.T) {
	repo := repository.NewCartRepository(newTestStore(t))

	pendant := model.CartItem{ID: "lakshmi-pendant-001", Name: "Lakshmi Pendant", Price: 85, Quantity: 1}
	repo.Add(pendant)
	items := repo.Add(pendant)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddClampsQuantity(t *testing.T) {
	repo := repository.NewCartRepository(newTestStore(t))

	items := repo.Add(model.CartItem{ID: "ganesha-arch-001", Name: "Ganesha Arch", Price: 250, Quantity: 0})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartSetQuantity(t *testing.T) {
	repo := repository.NewCartRepository(newTestStore(t))
	repo.Add(model.CartItem{ID: "ganesha-arch-001", Name: "Ganesha Arch", Price: 250, Quantity: 1})

	assert.True(t, repo.SetQuantity("ganesha-arch-001", 3))
	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	assert.False(t, repo.SetQuantity("ganesha-arch-001", 0))
	assert.False(t, repo.SetQuantity("no-such-id", 2))
}

func TestCartRemove(t *testing.T) {
	repo := repository.NewCartRepository(newTestStore(t))
	repo.Add(model.CartItem{ID: "ganesha-arch-001", Name: "Ganesha Arch", Price: 250, Quantity: 1})
	repo.Add(model.CartItem{ID: "lakshmi-pendant-001", Name: "Lakshmi Pendant", Price: 85, Quantity: 2})

	assert.True(t, repo.Remove("ganesha-arch-001"))
	assert.False(t, repo.Remove("ganesha-arch-001"))

	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "lakshmi-pendant-001", items[0].ID)
}

func TestCartSubtotalAndClear(t *testing.T) {
	store := newTestStore(t)
	repo := repository.NewCartRepository(store)
	repo.Add(model.CartItem{ID: "ganesha-arch-001", Name: "Ganesha Arch", Price: 250, Quantity: 1})
	repo.Add(model.CartItem{ID: "lakshmi-pendant-001", Name: "Lakshmi Pendant", Price: 85, Quantity: 2})

	assert.InDelta(t, 420.0, repo.Subtotal(), 0.001)

	repo.Clear()
	assert.Empty(t, repo.Items())
	assert.Zero(t, repo.Subtotal())

	// cart state survives repository reconstruction
	repo.Add(model.CartItem{ID: "rama-darbar-001", Name: "Rama Darbar", Price: 450, Quantity: 1})
	again := repository.NewCartRepository(store)
	assert.Len(t, again.Items(), 1)
}
