// Package cart keeps a local read-model of the authenticated user's cart
// consistent with the authoritative cart owned by the OpenShop backend.
//
// The backend is the single source of truth: every mutation is sent to it and
// the local cart is replaced wholesale with whatever it returns. Nothing here
// computes prices, clamps quantities, or merges state locally.
package cart

// Line is one product's presence in the cart.
//
// Key is a synthetic, session-local identifier assigned during normalization
// for list rendering only. It carries no meaning, is never sent to the
// backend, and must not be used to correlate lines across two fetches; the
// product ID is the only durable key.
type Line struct {
	Key       string
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Cart is the last-known authoritative cart for one user. Lines never contain
// zero or negative quantities: the backend omits removed lines from its
// responses and the local model stores those responses verbatim.
type Cart struct {
	OwnerID int64
	Lines   []Line
}

// ItemCount returns the total number of items across all lines. Computed
// fresh on every call, never stored.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of quantity times unit price across all lines.
// Unit prices are the backend-captured values from the most recent response.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.Lines {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

// LineFor returns the line for the given product and whether it exists.
func (c *Cart) LineFor(productID string) (Line, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return Line{}, false
}

// clone returns a deep copy so snapshot readers never share line storage with
// the synchronizer.
func (c *Cart) clone() *Cart {
	if c == nil {
		return nil
	}
	cp := &Cart{
		OwnerID: c.OwnerID,
		Lines:   make([]Line, len(c.Lines)),
	}
	copy(cp.Lines, c.Lines)
	return cp
}
