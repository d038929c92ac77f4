// Package api implements the StorefrontGateway over JSON-over-HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// client is the thin HTTP client through which the core talks to the remote
// storefront API. It owns the untyped-JSON boundary: every ingested payload
// is validated and coerced here, failing closed, so the layers above only
// ever see well-formed entities.
type client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

// productPayload mirrors the catalog wire shape. Entries that fail
// validation are dropped on ingestion rather than propagated.
type productPayload struct {
	ID       string  `json:"_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

// orderPayload mirrors the tracking wire shape.
type orderPayload struct {
	ID                string     `json:"_id" validate:"required"`
	UserEmail         string     `json:"user_email"`
	Products          []string   `json:"products"`
	Total             float64    `json:"total" validate:"gte=0"`
	Status            string     `json:"status" validate:"required"`
	Location          string     `json:"location"`
	TrackingNumber    string     `json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// errorPayload is the remote rejection body.
type errorPayload struct {
	Detail string `json:"detail"`
}

// NewClient is the constructor for the gateway client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.StorefrontGateway {
	return &client{
		baseURL: cfg.API.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// Signup registers a new account.
func (c *client) Signup(ctx context.Context, creds service.Credentials) error {
	return c.post(ctx, "/signup", creds, nil)
}

// Login exchanges credentials for a raw bearer credential.
func (c *client) Login(ctx context.Context, creds service.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/login", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.Wrap(domainerrors.ErrRemoteRejected, "login response carried no token")
	}

	return out.Token, nil
}

// ListProducts fetches the catalog, dropping malformed entries.
func (c *client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var payloads []productPayload
	if err := c.get(ctx, "/products", &payloads); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(payloads))
	for _, p := range payloads {
		if err := c.validate.Struct(p); err != nil {
			c.logger.Warn("Dropping malformed catalog entry", "id", p.ID, "error", err)

			continue
		}
		products = append(products, entity.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Stock:    p.Stock,
		})
	}

	return products, nil
}

// AddProduct publishes a new catalog entry.
func (c *client) AddProduct(ctx context.Context, product entity.Product) error {
	body := struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		Stock    int     `json:"stock"`
	}{
		Name:     product.Name,
		Price:    product.Price,
		Category: product.Category,
		Stock:    product.Stock,
	}

	return c.post(ctx, "/products", body, nil)
}

// CreateOrder issues a single order-creation request. The coupon percent
// travels as a query parameter; the remote API is the pricing authority.
func (c *client) CreateOrder(ctx context.Context, order service.OrderRequest, couponPercent int) (*service.OrderConfirmation, error) {
	path := "/order"
	if couponPercent != 0 {
		path += "?coupon=" + strconv.Itoa(couponPercent)
	}

	var confirmation service.OrderConfirmation
	if err := c.post(ctx, path, order, &confirmation); err != nil {
		return nil, err
	}

	return &confirmation, nil
}

// TrackOrders fetches all orders recorded for the given email.
func (c *client) TrackOrders(ctx context.Context, email string) ([]entity.Order, error) {
	var payloads []orderPayload
	if err := c.get(ctx, "/track/"+url.PathEscape(email), &payloads); err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(payloads))
	for _, o := range payloads {
		if err := c.validate.Struct(o); err != nil {
			c.logger.Warn("Dropping malformed order record", "id", o.ID, "error", err)

			continue
		}
		orders = append(orders, entity.Order{
			ID:                o.ID,
			UserEmail:         o.UserEmail,
			Products:          o.Products,
			Total:             o.Total,
			Status:            entity.OrderStatus(o.Status),
			Location:          o.Location,
			TrackingNumber:    o.TrackingNumber,
			EstimatedDelivery: o.EstimatedDelivery,
		})
	}

	return orders, nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.do(req, out)
}

func (c *client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes one request and folds transport failures and remote
// rejections into the domain error taxonomy.
func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Storefront API unreachable", "url", req.URL.String(), "error", err)

		return errors.Wrap(domainerrors.ErrNetworkFailure, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrNetworkFailure, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var rejection errorPayload
		if err := json.Unmarshal(data, &rejection); err == nil && rejection.Detail != "" {
			return domainerrors.ErrRemoteRejected.WithDetails(rejection.Detail)
		}

		return errors.Wrapf(domainerrors.ErrRemoteRejected, "status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(domainerrors.ErrRemoteRejected, "undecodable response body")
	}

	return nil
}
