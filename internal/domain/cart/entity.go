// internal/domain/cart/entity.go
package cart

// Line represents one cart line. Product fields are copied from the catalog
// at add time so the cart stays valid even if the catalog changes later in
// the session.
type Line struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // Price at time of adding, in FCFA
	Image     string `json:"image"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart is an ordered list of lines; insertion order is display order. At
// most one line exists per product id.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges quantity into an existing line for the same product, or appends
// a new line. Quantity must already be validated as >= 1 by the caller.
func (c *Cart) Add(line Line) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Remove deletes the line for a product id. Removing an absent line is a
// no-op; the return value reports whether anything changed.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Total returns the exact integer sum of price × quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// TotalQuantity returns the sum of all line quantities, used for the cart
// badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
