package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			SubmitTimeout: 5 * time.Second,
		},
	}
}

// fakeCartStore is an in-memory CartStore with injectable failures.
type fakeCartStore struct {
	mu      sync.Mutex
	cart    entity.Cart
	saved   bool
	loadErr error
	saveErr error
	clrErr  error
}

func (f *fakeCartStore) Load(context.Context) (entity.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}

	out := make(entity.Cart, len(f.cart))
	copy(out, f.cart)

	return out, nil
}

func (f *fakeCartStore) Save(_ context.Context, cart entity.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cart = cart
	f.saved = true

	return nil
}

func (f *fakeCartStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clrErr != nil {
		return f.clrErr
	}
	f.cart = nil

	return nil
}

// fakeTokenStore is an in-memory TokenStore.
type fakeTokenStore struct {
	mu    sync.Mutex
	token string
}

func (f *fakeTokenStore) Get(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.token == "" {
		return "", repository.ErrTokenNotFound
	}

	return f.token, nil
}

func (f *fakeTokenStore) Set(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token

	return nil
}

func (f *fakeTokenStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""

	return nil
}

// fakeDecoder decodes "email|role" strings into sessions; anything else is
// anonymous.
type fakeDecoder struct{}

func (fakeDecoder) Decode(raw string) *entity.Session {
	var email, role string
	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			email, role = raw[:i], raw[i+1:]

			break
		}
	}
	if email == "" {
		return nil
	}

	return &entity.Session{Email: email, Role: entity.RoleFromString(role)}
}

func sessionToken(email string, role entity.Role) string {
	return email + "|" + role.String()
}

// fakeGateway records calls and returns scripted results.
type fakeGateway struct {
	mu sync.Mutex

	signupErr error

	loginToken string
	loginErr   error

	products    []entity.Product
	productsErr error

	confirmation   *service.OrderConfirmation
	createOrderErr error
	createCalls    int
	lastOrder      service.OrderRequest
	lastCoupon     int
	createDelay    time.Duration

	orders    []entity.Order
	trackErr  error
	lastEmail string
}

func (f *fakeGateway) Signup(context.Context, service.Credentials) error {
	return f.signupErr
}

func (f *fakeGateway) Login(context.Context, service.Credentials) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}

	return f.loginToken, nil
}

func (f *fakeGateway) ListProducts(context.Context) ([]entity.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}

	return f.products, nil
}

func (f *fakeGateway) AddProduct(context.Context, entity.Product) error {
	return nil
}

func (f *fakeGateway) CreateOrder(ctx context.Context, order service.OrderRequest, couponPercent int) (*service.OrderConfirmation, error) {
	f.mu.Lock()
	f.createCalls++
	f.lastOrder = order
	f.lastCoupon = couponPercent
	delay := f.createDelay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "request aborted")
		case <-time.After(delay):
		}
	}

	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}

	return f.confirmation, nil
}

func (f *fakeGateway) TrackOrders(_ context.Context, email string) ([]entity.Order, error) {
	f.mu.Lock()
	f.lastEmail = email
	f.mu.Unlock()

	if f.trackErr != nil {
		return nil, f.trackErr
	}

	return f.orders, nil
}

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*service.OrderPlacedEvent
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, event *service.OrderPlacedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)

	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}

// fakeQRCodeService returns canned bytes.
type fakeQRCodeService struct {
	png []byte
	err error
}

func (f *fakeQRCodeService) GenerateTrackingQR(string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.png, nil
}

func (f *fakeQRCodeService) ParseTrackingQR(string) (string, error) {
	return "", errors.New("not implemented")
}
