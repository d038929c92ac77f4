package entity

// Account is a registered storefront user as stored by the remote API.
// The client core never holds accounts; the type exists for the development
// stub, which persists them in memory.
type Account struct {
	Email        string
	PasswordHash string // bcrypt hash, never the plaintext password.
	Role         Role
}
