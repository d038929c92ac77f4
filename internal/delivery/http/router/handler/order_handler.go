package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type createOrderRequest struct {
	UserEmail string   `json:"user_email" validate:"required,email"`
	Products  []string `json:"products" validate:"required,min=1"`
	Total     float64  `json:"total" validate:"gte=0"`
}

// OrderHandler holds dependencies for order recording and tracking.
type OrderHandler struct {
	orders   repository.OrderRepository
	shipping service.ShippingEstimator
	cfg      *config.Config
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	orders repository.OrderRepository,
	shipping service.ShippingEstimator,
	cfg *config.Config,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		shipping: shipping,
		cfg:      cfg,
		logger:   logger,
	}
}

// Create records an order and returns the coupon-adjusted final price.
// The coupon travels as a query parameter; an unparsable or out-of-range
// value leaves the submitted total unchanged.
func (h *OrderHandler) Create(c echo.Context) error {
	var input createOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid order input")
	}

	coupon := 0
	if raw := c.QueryParam("coupon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("Ignoring unparsable coupon", "coupon", raw)
		} else {
			coupon = parsed
		}
	}

	finalPrice := pricing.ApplyDiscount(input.Total, coupon)

	order := &entity.Order{
		UserEmail: input.UserEmail,
		Products:  input.Products,
		Total:     finalPrice,
		Status:    entity.OrderStatusProcessing,
	}
	h.attachShipping(order)

	if err := h.orders.Create(c.Request().Context(), order); err != nil {
		return errors.Wrap(err, "failed to record order")
	}

	h.logger.Info("Order recorded",
		"order_id", order.ID,
		"email", order.UserEmail,
		"final_price", finalPrice,
		"coupon", coupon,
	)

	return response.FinalPrice(c, http.StatusOK, finalPrice)
}

// Track returns all orders recorded for an email as a bare array.
func (h *OrderHandler) Track(c echo.Context) error {
	email := c.Param("email")

	orders, err := h.orders.FindByUserEmail(c.Request().Context(), email)
	if err != nil {
		return errors.Wrap(err, "failed to fetch orders")
	}

	if orders == nil {
		orders = []entity.Order{}
	}

	return c.JSON(http.StatusOK, orders)
}

// attachShipping stamps the order with a tracking number and delivery
// estimate from the configured warehouse route. Parcel weight is
// approximated at one kilogram per product line.
func (h *OrderHandler) attachShipping(order *entity.Order) {
	order.TrackingNumber = h.shipping.NewTrackingNumber()

	ship := h.cfg.Shipping
	if ship == nil {
		return
	}

	distanceKm := h.shipping.Distance(
		orb.Point{ship.OriginLon, ship.OriginLat},
		orb.Point{ship.DestinationLon, ship.DestinationLat},
	)
	eta := h.shipping.EstimateDelivery(distanceKm)
	order.EstimatedDelivery = &eta
}
