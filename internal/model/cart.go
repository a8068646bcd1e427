package model

// CartLine is a single product entry in a cart.
type CartLine struct {
	Product  *Product
	Quantity int
}

// Cart holds a user's pending selection. Lines are keyed by product ID and
// kept in the order they were first added.
type Cart struct {
	lines []*CartLine
	index map[int]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		index: make(map[int]int),
	}
}

// Add increases the quantity held for product by quantity. A line already
// held for the same ID is repointed at product.
func (c *Cart) Add(product *Product, quantity int) {
	c.line(product).Quantity += quantity
}

// Remove decreases the quantity held for product by quantity. The line is
// kept even when its quantity drops to zero or below.
func (c *Cart) Remove(product *Product, quantity int) {
	c.line(product).Quantity -= quantity
}

// Quantity returns the quantity held for product, or zero when absent.
func (c *Cart) Quantity(product *Product) int {
	if i, ok := c.index[product.ID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// Contains reports whether the cart has a line for product.
func (c *Cart) Contains(product *Product) bool {
	_, ok := c.index[product.ID]
	return ok
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	for i, l := range c.lines {
		lines[i] = *l
	}
	return lines
}

// Len returns the number of lines, including zero or negative ones.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[int]int)
}

// Prune drops every line whose quantity is zero or below.
func (c *Cart) Prune() {
	kept := c.lines[:0]
	c.index = make(map[int]int, len(c.lines))
	for _, l := range c.lines {
		if l.Quantity > 0 {
			c.index[l.Product.ID] = len(kept)
			kept = append(kept, l)
		}
	}
	clear(c.lines[len(kept):])
	c.lines = kept
}

func (c *Cart) line(product *Product) *CartLine {
	if c.index == nil {
		c.index = make(map[int]int)
	}
	if i, ok := c.index[product.ID]; ok {
		// The latest instance for an ID is the one priced and decremented.
		c.lines[i].Product = product
		return c.lines[i]
	}
	l := &CartLine{Product: product}
	c.index[product.ID] = len(c.lines)
	c.lines = append(c.lines, l)
	return l
}
