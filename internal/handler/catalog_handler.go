package handler

import (
	"seafood-exporter-api/internal/service"
	"seafood-exporter-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists products, optionally filtered by exact category.
// GET /api/products?category=Shrimp
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	res := h.service.ListProducts(c.UserContext(), category)

	logx.Debug().
		Str("category", category).
		Bool("from_store", res.FromStore).
		Int("count", len(res.Products)).
		Msg("products served")

	return c.JSON(res.Products)
}
