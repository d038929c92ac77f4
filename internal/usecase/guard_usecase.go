package usecase

import (
	"storefront/internal/domain/entity"
)

// GuardUsecase decides whether a view may render for a given session.
//
// Authorize is a pure function of its inputs: no I/O, no clock, no stored
// state. The decision is advisory client-side routing only; the remote API
// re-authorizes every protected call regardless of what the guard allowed.
type GuardUsecase interface {
	Authorize(view entity.View, session *entity.Session) entity.Decision
}
