package entity

// Product is a catalog entry as served by the remote storefront API.
// The ID is the remote document identifier, so the JSON shape mirrors the
// wire format (`_id`).
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}
