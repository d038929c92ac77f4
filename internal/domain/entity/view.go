package entity

// View identifies a navigable storefront screen.
type View string

const (
	ViewLogin    View = "login"
	ViewSignup   View = "signup"
	ViewProducts View = "products"
	ViewCart     View = "cart"
	ViewTrack    View = "track"
	ViewAdmin    View = "admin"
)

// ViewKind classifies a view by the access it requires.
type ViewKind int

const (
	// ViewPublic requires no session.
	ViewPublic ViewKind = iota
	// ViewUserProtected requires any session.
	ViewUserProtected
	// ViewAdminProtected requires a session with the admin role.
	ViewAdminProtected
)

// Kind returns the access classification of the view. Unknown views are
// treated as user-protected so that a missing registration fails toward the
// login screen rather than toward open access.
func (v View) Kind() ViewKind {
	switch v {
	case ViewLogin, ViewSignup:
		return ViewPublic
	case ViewAdmin:
		return ViewAdminProtected
	default:
		return ViewUserProtected
	}
}

// Decision is the outcome of a route-guard check. When Allowed is false,
// RedirectTo carries the path the view layer should navigate to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the decision that lets the requested view render.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Redirect is the decision that sends the caller to another path.
func Redirect(path string) Decision {
	return Decision{RedirectTo: path}
}
