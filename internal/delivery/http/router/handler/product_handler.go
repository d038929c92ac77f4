package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

// ProductHandler holds dependencies for catalog endpoints.
type ProductHandler struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(products repository.ProductRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// List returns the full catalog as a bare array.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}

	return c.JSON(http.StatusOK, products)
}

// Create records a new catalog entry. Admin-only by convention; the
// original backend trusts the caller here too.
func (h *ProductHandler) Create(c echo.Context) error {
	var input addProductRequest
	if err := c.Bind(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid product input")
	}

	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Stock:    input.Stock,
	}
	if err := h.products.Create(c.Request().Context(), product); err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	h.logger.Info("Product added", "name", product.Name, "price", product.Price)

	return response.Msg(c, http.StatusOK, "Product added")
}
