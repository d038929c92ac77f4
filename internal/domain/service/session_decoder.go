package service

import "storefront/internal/domain/entity"

// SessionDecoder derives a Session from the raw client-held credential.
//
// Decoding inspects the claims segment only; it performs no signature or
// expiry verification (that is the remote API's responsibility on every
// protected call). A credential that is empty, structurally malformed, or
// whose claims segment cannot be decoded yields nil: anonymous, never an
// error.
type SessionDecoder interface {
	Decode(raw string) *entity.Session
}
