package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	gateway service.StorefrontGateway
	tokens  repository.TokenStore
	decoder service.SessionDecoder
	logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	gateway service.StorefrontGateway,
	tokens repository.TokenStore,
	decoder service.SessionDecoder,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		gateway: gateway,
		tokens:  tokens,
		decoder: decoder,
		logger:  logger,
	}
}

// SignUp registers a new account with the remote API.
func (srv *sessionService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	srv.logger.Info("Registering account", "email", input.Email)

	err := srv.gateway.Signup(ctx, service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to sign up")
	}

	return nil
}

// Login exchanges credentials for a bearer credential and persists it.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	srv.logger.Info("Logging in", "email", input.Email)

	token, err := srv.gateway.Login(ctx, service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	session := srv.decoder.Decode(token)
	if session == nil {
		// The remote handed back a credential the client cannot read.
		// Nothing is persisted, so the caller stays anonymous.
		srv.logger.Warn("Received undecodable credential from login")

		return nil, errors.Wrap(domainerrors.ErrInternalError, "login returned an unreadable credential")
	}

	if err := srv.tokens.Set(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to persist credential")
	}

	return session, nil
}

// Logout drops the persisted credential.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.logger.Info("Logging out")

	if err := srv.tokens.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear credential")
	}

	return nil
}

// Current returns the session decoded from the persisted credential.
// Any failure along the way degrades to anonymous rather than erroring.
func (srv *sessionService) Current(ctx context.Context) *entity.Session {
	token, err := srv.tokens.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrTokenNotFound) {
			srv.logger.Warn("Failed to read persisted credential", "error", err)
		}

		return nil
	}

	return srv.decoder.Decode(token)
}
