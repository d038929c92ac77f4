// Command storefront walks the client core through a full purchase journey
// against the configured storefront API. It exists as a development driver
// for the library: every client-side component is wired exactly as an
// embedding application would wire it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		fx.Invoke(runJourney),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.NewBucket,
		storage.NewCartStore,
		storage.NewTokenStore,
		auth.NewClaimsDecoder,
		api.NewClient,
		pubsub.NewEventPublisher,
		newQRCodeService,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewGuardService,
		impl.NewSessionService,
		impl.NewCartService,
		impl.NewCheckoutService,
		impl.NewTrackingService,
	)
}

type journeyParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Ctx        context.Context
	Logger     *slog.Logger
	Gateway    service.StorefrontGateway
	Guard      usecase.GuardUsecase
	Sessions   usecase.SessionUsecase
	Carts      usecase.CartUsecase
	Checkout   usecase.CheckoutUsecase
	Tracking   usecase.TrackingUsecase
}

func runJourney(params journeyParams) {
	go func() {
		if err := journey(params); err != nil {
			params.Logger.Error("Journey failed", slog.Any("error", err))
			_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

			return
		}
		_ = params.Shutdowner.Shutdown()
	}()
}

func journey(params journeyParams) error {
	ctx := params.Ctx
	logger := params.Logger

	email := envOr("STOREFRONT_EMAIL", "demo@example.com")
	password := envOr("STOREFRONT_PASSWORD", "secret123")

	// An anonymous visitor bounces off the products view
	decision := params.Guard.Authorize(entity.ViewProducts, params.Sessions.Current(ctx))
	if !decision.Allowed {
		logger.Info("Guard redirected anonymous visitor", "redirect", decision.RedirectTo)
	}

	if err := params.Sessions.SignUp(ctx, &usecase.SignUpInput{Email: email, Password: password}); err != nil {
		// An already-registered demo account is fine; everything else is not
		logger.Info("Signup skipped", "reason", err.Error())
	}

	session, err := params.Sessions.Login(ctx, &usecase.LoginInput{Email: email, Password: password})
	if err != nil {
		return errors.Wrap(err, "login failed")
	}
	logger.Info("Logged in", "email", session.Email, "role", session.Role.String())

	if err := fillCart(ctx, params); err != nil {
		return err
	}

	total, err := params.Carts.Total(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to total cart")
	}
	preview, err := params.Carts.DiscountedTotal(ctx, 10)
	if err != nil {
		return errors.Wrap(err, "failed to preview discount")
	}
	logger.Info("Cart ready", "total", total, "preview_with_coupon_10", preview)

	output, err := params.Checkout.PlaceOrder(ctx, 10)
	if err != nil {
		return errors.Wrap(err, "order submission failed")
	}
	logger.Info("Order confirmed",
		"final_price", output.FinalPrice,
		"cart_cleared", output.CartCleared,
		"next", output.RedirectTo,
	)

	orders, err := params.Tracking.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to track orders")
	}
	for _, row := range params.Tracking.Present(orders) {
		fmt.Printf("%s  %-10s  %-12s  %s  %s\n", row.ShortID, row.Status, row.Total, row.Location, row.Products)
	}

	return nil
}

// fillCart adds every in-stock catalog product to the cart once.
func fillCart(ctx context.Context, params journeyParams) error {
	gatewayProducts, err := params.Gateway.ListProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}

	added := 0
	for _, product := range gatewayProducts {
		if !product.InStock() {
			continue
		}
		if _, err := params.Carts.Add(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to add %q", product.Name)
		}
		added++
	}
	if added == 0 {
		return errors.New("catalog has no in-stock products to buy")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
