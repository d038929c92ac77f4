// Package impl contains the application-specific business rules implementations.
package impl

import (
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// guardService implements the GuardUsecase interface.
type guardService struct{}

// NewGuardService is the constructor for guardService.
func NewGuardService() usecase.GuardUsecase {
	return &guardService{}
}

// Authorize decides whether the view may render for the session.
// Unknown views classify as user-protected, so an unregistered screen fails
// toward the login redirect rather than toward open access.
func (srv *guardService) Authorize(view entity.View, session *entity.Session) entity.Decision {
	switch view.Kind() {
	case entity.ViewPublic:
		return entity.Allow()

	case entity.ViewAdminProtected:
		if session == nil {
			return entity.Redirect(constants.PathLogin)
		}
		if !session.IsAdmin() {
			return entity.Redirect(constants.PathProducts)
		}

		return entity.Allow()

	default:
		if session == nil {
			return entity.Redirect(constants.PathLogin)
		}

		return entity.Allow()
	}
}
