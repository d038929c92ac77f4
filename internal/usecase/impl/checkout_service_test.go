package impl

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	cartStore *fakeCartStore
	tokens    *fakeTokenStore
	gateway   *fakeGateway
	publisher *fakePublisher
	carts     usecase.CartUsecase
	sessions  usecase.SessionUsecase
	checkout  usecase.CheckoutUsecase
}

func newCheckoutFixture() *checkoutFixture {
	logger := newDiscardLogger()
	f := &checkoutFixture{
		cartStore: &fakeCartStore{},
		tokens:    &fakeTokenStore{token: sessionToken("user@example.com", entity.RoleUser)},
		gateway:   &fakeGateway{confirmation: &service.OrderConfirmation{FinalPrice: 135}},
		publisher: &fakePublisher{},
	}
	f.carts = NewCartService(f.cartStore, logger)
	f.sessions = NewSessionService(f.gateway, f.tokens, fakeDecoder{}, logger)
	f.checkout = NewCheckoutService(newTestConfig(), f.sessions, f.carts, f.gateway, f.publisher, logger)

	return f
}

func (f *checkoutFixture) fillCart(t *testing.T) {
	t.Helper()
	_, err := f.carts.Add(t.Context(), laptop())
	require.NoError(t, err)
	_, err = f.carts.Add(t.Context(), mouse())
	require.NoError(t, err)
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)

	output, err := f.checkout.PlaceOrder(t.Context(), 10)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, usecase.CheckoutSucceeded, f.checkout.State())
	assert.InDelta(t, 150.0, output.OrderTotal, 0.001)
	assert.InDelta(t, 135.0, output.FinalPrice, 0.001)
	assert.True(t, output.CartCleared)
	assert.Equal(t, "/track", output.RedirectTo)

	// The submitted total is undiscounted; the coupon travels out-of-band
	assert.Equal(t, 1, f.gateway.createCalls)
	assert.InDelta(t, 150.0, f.gateway.lastOrder.Total, 0.001)
	assert.Equal(t, 10, f.gateway.lastCoupon)
	assert.Equal(t, "user@example.com", f.gateway.lastOrder.UserEmail)
	assert.Equal(t, []string{"Laptop", "Mouse"}, f.gateway.lastOrder.Products)

	// Cart cleared only after confirmation
	cart, err := f.carts.Load(t.Context())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	// Guard fails before any network call or state transition
	assert.Equal(t, usecase.CheckoutIdle, f.checkout.State())
	assert.Zero(t, f.gateway.createCalls)
}

func TestCheckoutService_PlaceOrder_NoSession(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	require.NoError(t, f.tokens.Clear(t.Context()))

	_, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.Equal(t, usecase.CheckoutIdle, f.checkout.State())
	assert.Zero(t, f.gateway.createCalls)
}

func TestCheckoutService_PlaceOrder_RemoteRejection(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	f.gateway.createOrderErr = domainerrors.ErrRemoteRejected.WithDetails("Insufficient stock")

	_, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRemoteRejected)
	assert.Equal(t, usecase.CheckoutFailed, f.checkout.State())

	// Cart preserved exactly for retry or editing
	cart, err := f.carts.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, cart, 2)
	assert.Empty(t, f.publisher.events)
}

func TestCheckoutService_PlaceOrder_NetworkFailure(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	f.gateway.createOrderErr = domainerrors.ErrNetworkFailure

	_, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
	assert.Equal(t, usecase.CheckoutFailed, f.checkout.State())

	cart, err := f.carts.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestCheckoutService_PlaceOrder_Timeout(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	f.gateway.createDelay = time.Second

	// Rebuild the workflow with a timeout shorter than the gateway delay
	cfg := newTestConfig()
	cfg.Checkout.SubmitTimeout = 20 * time.Millisecond
	checkout := NewCheckoutService(cfg, f.sessions, f.carts, f.gateway, f.publisher, newDiscardLogger())

	_, err := checkout.PlaceOrder(t.Context(), 0)
	require.Error(t, err)
	assert.Equal(t, usecase.CheckoutFailed, checkout.State())

	cart, err := f.carts.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestCheckoutService_PlaceOrder_RetryAfterFailure(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)

	f.gateway.createOrderErr = domainerrors.ErrNetworkFailure
	_, err := f.checkout.PlaceOrder(t.Context(), 10)
	require.Error(t, err)
	assert.Equal(t, usecase.CheckoutFailed, f.checkout.State())

	// A later invocation starts over and succeeds with the preserved cart
	f.gateway.createOrderErr = nil
	output, err := f.checkout.PlaceOrder(t.Context(), 10)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, output.OrderTotal, 0.001)
	assert.Equal(t, usecase.CheckoutSucceeded, f.checkout.State())
	assert.Equal(t, 2, f.gateway.createCalls)
}

func TestCheckoutService_PlaceOrder_ClearFailureKeepsConfirmation(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	f.cartStore.clrErr = assert.AnError

	output, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.NoError(t, err)
	require.NotNil(t, output)

	// Confirmation is never lost; the caller just learns the cart survived
	assert.False(t, output.CartCleared)
	assert.Equal(t, usecase.CheckoutSucceeded, f.checkout.State())
	assert.InDelta(t, 135.0, output.FinalPrice, 0.001)
}

func TestCheckoutService_PlaceOrder_PublishesEvent(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)

	_, err := f.checkout.PlaceOrder(t.Context(), 10)
	require.NoError(t, err)

	require.Len(t, f.publisher.events, 1)
	event := f.publisher.events[0]
	assert.NotEmpty(t, event.OrderID)
	assert.Equal(t, "user@example.com", event.UserEmail)
	assert.Equal(t, []string{"Laptop", "Mouse"}, event.Products)
	assert.InDelta(t, 150.0, event.Total, 0.001)
	assert.Equal(t, 10, event.CouponPercent)
}

func TestCheckoutService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart(t)
	f.publisher.err = assert.AnError

	output, err := f.checkout.PlaceOrder(t.Context(), 0)
	require.NoError(t, err)
	assert.True(t, output.CartCleared)
	assert.Equal(t, usecase.CheckoutSucceeded, f.checkout.State())
}

// The workflow of composing a cart, previewing a coupon, and submitting.
func TestCheckoutService_FullPurchaseFlow(t *testing.T) {
	f := newCheckoutFixture()
	ctx := t.Context()

	_, err := f.carts.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = f.carts.Add(ctx, mouse())
	require.NoError(t, err)

	total, err := f.carts.Total(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, total, 0.001)

	preview, err := f.carts.DiscountedTotal(ctx, 10)
	require.NoError(t, err)
	assert.InDelta(t, 135.0, preview, 0.001)

	output, err := f.checkout.PlaceOrder(ctx, 10)
	require.NoError(t, err)
	assert.InDelta(t, output.FinalPrice, preview, 0.001)
	assert.True(t, output.CartCleared)
	assert.Equal(t, usecase.CheckoutSucceeded, f.checkout.State())

	cart, err := f.carts.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
