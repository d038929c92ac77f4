package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// shortIDLength is how many trailing characters of an order id the tracking
// table shows.
const shortIDLength = 8

// locationPlaceholder is shown when the remote has not reported a location.
const locationPlaceholder = "Not updated"

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	sessions usecase.SessionUsecase
	gateway  service.StorefrontGateway
	qrcodes  service.QRCodeService
	logger   *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(
	sessions usecase.SessionUsecase,
	gateway service.StorefrontGateway,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		sessions: sessions,
		gateway:  gateway,
		qrcodes:  qrcodes,
		logger:   logger,
	}
}

// Fetch retrieves the orders of the current session's account.
func (srv *trackingService) Fetch(ctx context.Context) ([]entity.Order, error) {
	session := srv.sessions.Current(ctx)
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrNoSession)
	}

	orders, err := srv.gateway.TrackOrders(ctx, session.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch orders")
	}

	srv.logger.Debug("Fetched orders", "email", session.Email, "count", len(orders))

	return orders, nil
}

// Present maps orders to display rows.
func (srv *trackingService) Present(orders []entity.Order) []usecase.DisplayRow {
	rows := make([]usecase.DisplayRow, len(orders))
	for i, order := range orders {
		rows[i] = usecase.DisplayRow{
			ShortID:  shortID(order.ID),
			Status:   order.Status.String(),
			Tone:     order.Status.Tone(),
			Products: strings.Join(order.Products, ", "),
			Total:    fmt.Sprintf("₹%.2f", order.Total),
			Location: locationOrPlaceholder(order.Location),
		}
	}

	return rows
}

// TrackingQR renders a QR code image for sharing an order's tracking
// reference.
func (srv *trackingService) TrackingQR(orderID string) ([]byte, error) {
	png, err := srv.qrcodes.GenerateTrackingQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}

	return id[len(id)-shortIDLength:]
}

func locationOrPlaceholder(location string) string {
	if location == "" {
		return locationPlaceholder
	}

	return location
}
