package cart

import (
	"github.com/dxlr/storefront/internal/catalog"
)

// Item is one (product, size, color) line in a cart. Product is the
// snapshot captured at add time; later catalog changes do not reach
// items already in the cart.
type Item struct {
	Key      string          `json:"key"`
	Product  catalog.Product `json:"product"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
}

// ItemKey builds the identity key for a line item.
func ItemKey(productID, size, color string) string {
	return productID + "-" + size + "-" + color
}

// UnitPrice is the effective price of the snapshotted product.
func (i Item) UnitPrice() float64 {
	return i.Product.EffectivePrice()
}

// State is the full cart state: ordered line items plus the panel
// visibility flag. Only the items are ever persisted.
type State struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"is_open"`
}

// ItemCount is the sum of all line quantities.
func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of effective unit price times quantity over all
// lines, recomputed on every call.
func (s State) Subtotal() float64 {
	var sum float64
	for _, it := range s.Items {
		sum += it.UnitPrice() * float64(it.Quantity)
	}
	return sum
}

func (s State) indexOf(key string) int {
	for i, it := range s.Items {
		if it.Key == key {
			return i
		}
	}
	return -1
}
