package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

type ProductHandler struct {
	repo *repository.ProductRepository
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// ListProducts handles retrieving the catalog with optional filtering
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var products []model.Product
	switch {
	case c.QueryParam("featured") == "true":
		products = h.repo.GetFeatured()
	case c.QueryParam("category") != "":
		category := model.ProductCategory(c.QueryParam("category"))
		if category != model.CategoryJewelry && category != model.CategoryIdol {
			log.Warn("Invalid category filter", zap.String("category", string(category)))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category must be 'jewelry' or 'idol'"})
		}
		products = h.repo.GetByCategory(category)
	default:
		products = h.repo.List()
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved", zap.Int("count", len(products)))
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	product := h.repo.GetByID(id)
	if product == nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	prometheus.RecordProductOperation("get")
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new catalog entry
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var in model.ProductInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, err := h.repo.Create(in)
	if err != nil {
		if repository.IsValidation(err) {
			log.Warn("Product validation failed", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to create product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles a partial update of an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product := h.repo.Update(id, patch)
	if product == nil {
		log.Warn("Product not found for update", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated",
		zap.String("product_id", id),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles removing a product from the catalog
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !h.repo.Delete(id) {
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// ClearProducts drops the whole catalog; the defaults are re-seeded on the
// next read
func (h *ProductHandler) ClearProducts(c echo.Context) error {
	log := logger.FromContext(c)

	cleared := h.repo.ClearAll()
	prometheus.RecordProductOperation("clear")
	log.Info("Product catalog cleared", zap.Bool("cleared", cleared))
	return c.JSON(http.StatusOK, echo.Map{"cleared": cleared})
}
