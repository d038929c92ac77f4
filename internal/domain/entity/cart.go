package entity

// CartItem is a product snapshot taken at the moment it was added to the
// cart. It deliberately copies the catalog entry instead of referencing it,
// so later catalog changes do not rewrite an already-composed cart. The JSON
// shape matches the persisted cart document.
type CartItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// NewCartItem snapshots a catalog product into a cart line entry.
func NewCartItem(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    p.Stock,
	}
}

// Cart is the ordered sequence of selected items pending order. Insertion
// order is display order, and the same product may appear more than once as
// separate line entries.
type Cart []CartItem

// Total returns the sum of item prices, 0 for an empty cart.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price
	}

	return total
}

// ProductNames returns the item names in insertion order, as submitted to
// the order endpoint.
func (c Cart) ProductNames() []string {
	names := make([]string, len(c))
	for i, item := range c {
		names[i] = item.Name
	}

	return names
}

// IsEmpty reports whether the cart has no line entries.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
