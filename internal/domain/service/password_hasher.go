package service

// PasswordHasher abstracts one-way password hashing for the signup/login
// endpoints of the storefront API stub.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
