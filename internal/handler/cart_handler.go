package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/notify"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

type CartHandler struct {
	repo *repository.CartRepository
	info notify.StoreInfo
}

func NewCartHandler(repo *repository.CartRepository, info notify.StoreInfo) *CartHandler {
	return &CartHandler{repo: repo, info: info}
}

// GetCart returns the cart contents and subtotal
func (h *CartHandler) GetCart(c echo.Context) error {
	items := h.repo.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	prometheus.RecordCartOperation("get")
	return c.JSON(http.StatusOK, echo.Map{
		"items":    items,
		"subtotal": h.repo.Subtotal(),
	})
}

// AddItem puts a catalog item into the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	log := logger.FromContext(c)

	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and name are required"})
	}

	items := h.repo.Add(item)
	prometheus.RecordCartOperation("add")
	log.Info("Cart item added",
		zap.String("item_id", item.ID),
		zap.Int("cart_size", len(items)))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// QuantityRequest defines the structure for quantity updates
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// UpdateQuantity sets the quantity of a cart item
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
	}

	if !h.repo.SetQuantity(id, req.Quantity) {
		log.Warn("Cart item not found", zap.String("item_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Cart item not found"})
	}

	prometheus.RecordCartOperation("update_quantity")
	return c.JSON(http.StatusOK, echo.Map{"items": h.repo.Items()})
}

// RemoveItem takes an item out of the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !h.repo.Remove(id) {
		log.Warn("Cart item not found", zap.String("item_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Cart item not found"})
	}

	prometheus.RecordCartOperation("remove")
	return c.JSON(http.StatusOK, echo.Map{"items": h.repo.Items()})
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.repo.Clear()
	prometheus.RecordCartOperation("clear")
	logger.FromContext(c).Info("Cart cleared")
	return c.JSON(http.StatusOK, echo.Map{"items": []model.CartItem{}})
}

// Checkout builds the WhatsApp order hand-off link for the current cart
// and empties the cart. The order itself is confirmed out of band in the
// chat; nothing else is recorded here.
func (h *CartHandler) Checkout(c echo.Context) error {
	log := logger.FromContext(c)

	items := h.repo.Items()
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	message := notify.OrderMessage(h.info, items)
	whatsappURL := notify.Link(h.info.WhatsAppNumber, message)
	h.repo.Clear()

	prometheus.CheckoutLinksCounter.Inc()
	log.Info("Checkout hand-off link generated", zap.Int("items", len(items)))
	return c.JSON(http.StatusOK, echo.Map{"whatsapp_url": whatsappURL})
}
