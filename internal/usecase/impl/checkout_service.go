package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	sessions  usecase.SessionUsecase
	carts     usecase.CartUsecase
	gateway   service.StorefrontGateway
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger

	mu    sync.RWMutex
	state usecase.CheckoutState
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cfg *config.Config,
	sessions usecase.SessionUsecase,
	carts usecase.CartUsecase,
	gateway service.StorefrontGateway,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions:  sessions,
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
		timeout:   cfg.Checkout.SubmitTimeout,
		logger:    logger,
		state:     usecase.CheckoutIdle,
	}
}

// State returns the current submission state.
func (srv *checkoutService) State() usecase.CheckoutState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

func (srv *checkoutService) setState(state usecase.CheckoutState) {
	srv.mu.Lock()
	srv.state = state
	srv.mu.Unlock()
}

// PlaceOrder submits the persisted cart as a single order.
func (srv *checkoutService) PlaceOrder(ctx context.Context, couponPercent int) (*usecase.PlaceOrderOutput, error) {
	// Entry guards run before any state transition or network call, so a
	// rejected entry leaves the machine exactly where it was.
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	session := srv.sessions.Current(ctx)
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrNoSession)
	}

	srv.mu.Lock()
	if srv.state == usecase.CheckoutSubmitting {
		srv.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a submission is already in flight")
	}
	srv.state = usecase.CheckoutSubmitting
	srv.mu.Unlock()

	total := cart.Total()
	request := service.OrderRequest{
		UserEmail: session.Email,
		Products:  cart.ProductNames(),
		// The submitted total is the undiscounted cart total; the remote
		// API owns the coupon arithmetic.
		Total: total,
	}

	srv.logger.Info("Submitting order",
		"email", session.Email,
		"items", len(cart),
		"total", total,
		"coupon", couponPercent,
	)

	submitCtx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	confirmation, err := srv.gateway.CreateOrder(submitCtx, request, couponPercent)
	if err != nil {
		// The cart is untouched on any failure, so the user can retry or
		// edit it from exactly the state they submitted.
		srv.setState(usecase.CheckoutFailed)

		return nil, errors.Wrap(err, "order submission failed")
	}

	srv.setState(usecase.CheckoutSucceeded)

	output := &usecase.PlaceOrderOutput{
		OrderTotal: total,
		FinalPrice: confirmation.FinalPrice,
		RedirectTo: constants.PathTrack,
	}

	// The confirmation is already final; a failed clear must not lose it.
	if err := srv.carts.Clear(ctx); err != nil {
		srv.logger.Warn("Order confirmed but cart clear failed", "error", err)
	} else {
		output.CartCleared = true
	}

	srv.publishOrderPlaced(ctx, session.Email, request.Products, total, couponPercent)

	return output, nil
}

// publishOrderPlaced emits the order-placed event. Publishing is
// best-effort; the confirmation carries no remote order id, so the event is
// keyed by a client-generated correlation id.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, email string, products []string, total float64, couponPercent int) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderPlacedEvent{
		OrderID:       uuid.NewString(),
		UserEmail:     email,
		Products:      products,
		Total:         total,
		CouponPercent: couponPercent,
		PlacedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order-placed event", "error", err)
	}
}
